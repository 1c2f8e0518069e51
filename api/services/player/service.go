package playerservice

import (
	"context"
	"fmt"
	"time"

	"shootystats/api/cache"
	"shootystats/api/converters"
	"shootystats/api/dto"
	"shootystats/api/filters"
	playerfetcher "shootystats/fetcher/data/player"
	"shootystats/fetcher/repositories"
	"shootystats/pkg/database/models"

	"gorm.io/gorm"
)

const playerMemCacheDuration = time.Minute

// AccountResolver turns a name#tag pair into a stable account, hitting the
// upstream API.
type AccountResolver interface {
	GetAccountByNameTag(name string, tag string, onDemand bool) (*playerfetcher.Account, error)
}

// PlayerService serves the per player views and manages the tracked list.
type PlayerService struct {
	db         *gorm.DB
	memCache   *cache.MemCache
	statsCache cache.StatsCache
	resolver   AccountResolver

	MatchRepository   repositories.MatchRepository
	TrackedRepository repositories.TrackedAccountRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	DB         *gorm.DB
	MemCache   *cache.MemCache
	StatsCache cache.StatsCache
	Resolver   AccountResolver
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:                deps.DB,
		memCache:          deps.MemCache,
		statsCache:        deps.StatsCache,
		resolver:          deps.Resolver,
		MatchRepository:   repositories.NewMatchRepository(deps.DB),
		TrackedRepository: repositories.NewTrackedAccountRepository(deps.DB),
	}
}

// GetPlayerStats returns the recent stat lines and career averages of a
// player, caching the assembled view.
func (ps *PlayerService) GetPlayerStats(ctx context.Context, filter *filters.GetPlayerStatsFilter) (*dto.PlayerStats, error) {
	memKey := fmt.Sprintf("stats:player:%s:%d", filter.Puuid, filter.Limit)
	if cached := ps.memCache.Get(memKey); cached != nil {
		return cached.(*dto.PlayerStats), nil
	}

	if stats, err := ps.statsCache.GetPlayerStats(ctx, filter.Puuid, filter.Limit); err == nil && stats != nil {
		ps.memCache.Set(memKey, stats, playerMemCacheDuration)
		return stats, nil
	}

	rows, err := ps.MatchRepository.GetPlayerStatsByPuuid(filter.Puuid, filter.Limit)
	if err != nil {
		return nil, err
	}

	stats := converters.ConvertPlayerStats(filter.Puuid, rows)

	ps.statsCache.SetPlayerStats(ctx, stats, filter.Limit)
	ps.memCache.Set(memKey, stats, playerMemCacheDuration)

	return stats, nil
}

// TrackPlayer resolves a name#tag pair and adds it to the tracked list, so
// the fetch loop starts processing its matches.
func (ps *PlayerService) TrackPlayer(body *filters.TrackPlayerBody) (*dto.TrackedPlayer, error) {
	account, err := ps.resolver.GetAccountByNameTag(body.Name, body.Tag, true)
	if err != nil {
		return nil, err
	}

	tracked := &models.TrackedAccount{
		Puuid:    account.Puuid,
		GameName: account.Name,
		Tagline:  account.Tag,
		Region:   account.Region,
	}

	if err := ps.TrackedRepository.UpsertAccount(tracked); err != nil {
		return nil, fmt.Errorf("couldn't save the tracked account: %w", err)
	}

	return &dto.TrackedPlayer{
		Puuid:    tracked.Puuid,
		GameName: tracked.GameName,
		Tagline:  tracked.Tagline,
		Region:   tracked.Region,
	}, nil
}

// UntrackPlayer removes a name#tag pair from the tracked list.
// Already stored stats are kept.
func (ps *PlayerService) UntrackPlayer(body *filters.TrackPlayerBody) (*dto.TrackedPlayer, error) {
	account, err := ps.TrackedRepository.GetAccountByNameTag(body.Name, body.Tag)
	if err != nil {
		return nil, err
	}

	if err := ps.TrackedRepository.RemoveAccount(account.Puuid); err != nil {
		return nil, err
	}

	return &dto.TrackedPlayer{
		Puuid:    account.Puuid,
		GameName: account.GameName,
		Tagline:  account.Tagline,
		Region:   account.Region,
	}, nil
}
