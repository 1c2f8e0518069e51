package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shootystats/api/dto"
	"shootystats/pkg/redis"
)

// Key formats and durations for the stats responses.
// A processed match never changes, so its scoreboard can live longer than
// the per player view, which moves with every new match.
const (
	matchStatsCacheDuration = 6 * time.Hour
	matchStatsKey           = "stats:match:%s"

	playerStatsCacheDuration = 5 * time.Minute
	playerStatsKey           = "stats:player:%s:%d"
)

// StatsCache is the public interface for the redis backed response cache.
type StatsCache interface {
	GetMatchStats(ctx context.Context, matchId string) (*dto.MatchStats, error)
	SetMatchStats(ctx context.Context, stats *dto.MatchStats) error
	GetPlayerStats(ctx context.Context, puuid string, limit int) (*dto.PlayerStats, error)
	SetPlayerStats(ctx context.Context, stats *dto.PlayerStats, limit int) error
}

// Create a redis cache client.
type statsCache struct {
	redis *redis.RedisClient
}

// NewStatsCache creates a new instance of the stats redis client.
func NewStatsCache(redis *redis.RedisClient) StatsCache {
	return &statsCache{
		redis: redis,
	}
}

// GetMatchStats retrieves a cached match scoreboard, nil on a miss.
func (sc *statsCache) GetMatchStats(ctx context.Context, matchId string) (*dto.MatchStats, error) {
	key := fmt.Sprintf(matchStatsKey, matchId)

	result, err := sc.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var stats dto.MatchStats
	if err := json.Unmarshal([]byte(result), &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// SetMatchStats saves a given match scoreboard in cache.
func (sc *statsCache) SetMatchStats(ctx context.Context, stats *dto.MatchStats) error {
	j, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(matchStatsKey, stats.Metadata.MatchId)
	return sc.redis.Set(ctx, key, string(j), matchStatsCacheDuration)
}

// GetPlayerStats retrieves a cached player view, nil on a miss.
func (sc *statsCache) GetPlayerStats(ctx context.Context, puuid string, limit int) (*dto.PlayerStats, error) {
	key := fmt.Sprintf(playerStatsKey, puuid, limit)

	result, err := sc.redis.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var stats dto.PlayerStats
	if err := json.Unmarshal([]byte(result), &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// SetPlayerStats saves a given player view in cache.
func (sc *statsCache) SetPlayerStats(ctx context.Context, stats *dto.PlayerStats, limit int) error {
	j, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(playerStatsKey, stats.Puuid, limit)
	return sc.redis.Set(ctx, key, string(j), playerStatsCacheDuration)
}
