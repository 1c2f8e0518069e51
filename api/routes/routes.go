package routes

import (
	"net/http"

	"shootystats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	router := &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		}
	}
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	match := r.api.Group("/match")
	{
		match.GET("/:matchId/stats", handler.GetMatchStats)
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	player := r.api.Group("/player")
	{
		player.GET("/:puuid/stats", handler.GetPlayerStats)
		player.POST("/track", handler.TrackPlayer)
		player.DELETE("/track", handler.UntrackPlayer)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
