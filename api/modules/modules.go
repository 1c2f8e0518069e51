package modules

import (
	"fmt"

	"shootystats/api/cache"
	"shootystats/api/handlers"
	"shootystats/fetcher/data"
	fetchservice "shootystats/fetcher/services/match"
	"shootystats/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router        *gin.Engine
	MatchHandler  *handlers.MatchHandler
	PlayerHandler *handlers.PlayerHandler
}

// ModuleDependencies holds everything the handlers build upon.
type ModuleDependencies struct {
	DB         *gorm.DB
	MemCache   *cache.MemCache
	StatsCache cache.StatsCache
	Fetcher    *data.HenrikFetcher
	Processor  *fetchservice.MatchService
}

// Create a new module with all the necessary handlers initialized.
func NewModule(db *gorm.DB, fetcher *data.HenrikFetcher, processor *fetchservice.MatchService) (*Module, error) {
	router := gin.Default()

	redisClient, err := redis.NewClient()
	if err != nil {
		return nil, fmt.Errorf("couldn't start the response cache: %w", err)
	}

	deps := &ModuleDependencies{
		DB:         db,
		MemCache:   cache.NewMemCache(),
		StatsCache: cache.NewStatsCache(redisClient),
		Fetcher:    fetcher,
		Processor:  processor,
	}

	// Return the module with all handlers.
	return &Module{
		Router:        router,
		MatchHandler:  initializeMatchHandler(deps),
		PlayerHandler: initializePlayerHandler(deps),
	}, nil
}
