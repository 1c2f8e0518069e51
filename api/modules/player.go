package modules

import (
	"shootystats/api/handlers"
	playerservice "shootystats/api/services/player"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	playerDeps := &playerservice.PlayerServiceDeps{
		DB:         deps.DB,
		MemCache:   deps.MemCache,
		StatsCache: deps.StatsCache,
		Resolver:   deps.Fetcher.Player,
	}

	playerService := playerservice.NewPlayerService(playerDeps)

	playerHandlerDeps := &handlers.PlayerHandlerDependencies{
		PlayerService: playerService,
	}

	return handlers.NewPlayerHandler(playerHandlerDeps)
}
