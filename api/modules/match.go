package modules

import (
	"shootystats/api/handlers"
	matchservice "shootystats/api/services/match"
)

func initializeMatchHandler(deps *ModuleDependencies) *handlers.MatchHandler {
	matchDeps := &matchservice.MatchServiceDeps{
		DB:         deps.DB,
		MemCache:   deps.MemCache,
		StatsCache: deps.StatsCache,
		Processor:  deps.Processor,
	}

	matchService := matchservice.NewMatchService(matchDeps)

	matchHandlerDeps := &handlers.MatchHandlerDependencies{
		MatchService: matchService,
	}

	return handlers.NewMatchHandler(matchHandlerDeps)
}
