package matchservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shootystats/api/cache"
	"shootystats/api/converters"
	"shootystats/api/dto"
	"shootystats/api/filters"
	"shootystats/fetcher/repositories"
	"shootystats/pkg/database/models"

	"gorm.io/gorm"
)

const matchMemCacheDuration = time.Minute

// MatchProcessor is the on demand entrypoint into the fetch pipeline, used
// when a requested match was never processed.
type MatchProcessor interface {
	FetchAndProcess(matchId string, onDemand bool) (*models.MatchInfo, error)
}

// MatchService serves the stored scoreboards.
type MatchService struct {
	db              *gorm.DB
	memCache        *cache.MemCache
	statsCache      cache.StatsCache
	processor       MatchProcessor
	MatchRepository repositories.MatchRepository
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	DB         *gorm.DB
	MemCache   *cache.MemCache
	StatsCache cache.StatsCache
	Processor  MatchProcessor
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	return &MatchService{
		db:              deps.DB,
		memCache:        deps.MemCache,
		statsCache:      deps.StatsCache,
		processor:       deps.Processor,
		MatchRepository: repositories.NewMatchRepository(deps.DB),
	}
}

// GetMatchStats returns the full scoreboard of a match, going through the
// memory cache, then redis, then the database, and only then, when allowed,
// fetching the match on demand.
func (ms *MatchService) GetMatchStats(ctx context.Context, filter *filters.GetMatchStatsFilter) (*dto.MatchStats, error) {
	memKey := fmt.Sprintf("stats:match:%s", filter.MatchId)
	if cached := ms.memCache.Get(memKey); cached != nil {
		return cached.(*dto.MatchStats), nil
	}

	if stats, err := ms.statsCache.GetMatchStats(ctx, filter.MatchId); err == nil && stats != nil {
		ms.memCache.Set(memKey, stats, matchMemCacheDuration)
		return stats, nil
	}

	match, err := ms.MatchRepository.GetMatchByMatchId(filter.MatchId)
	if errors.Is(err, gorm.ErrRecordNotFound) && filter.OnDemand && ms.processor != nil {
		match, err = ms.processor.FetchAndProcess(filter.MatchId, true)
	}
	if err != nil {
		return nil, err
	}

	rows, err := ms.MatchRepository.GetPlayerStatsByMatchId(match.ID)
	if err != nil {
		return nil, err
	}

	stats := converters.ConvertMatchStats(match, rows)

	// A cache write failure only costs a recompute on the next request.
	ms.statsCache.SetMatchStats(ctx, stats)
	ms.memCache.Set(memKey, stats, matchMemCacheDuration)

	return stats, nil
}
