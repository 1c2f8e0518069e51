package handlers

import (
	"errors"
	"net/http"

	"shootystats/api/filters"
	playerservice "shootystats/api/services/player"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerHandler is the handler for the player endpoints.
type PlayerHandler struct {
	PlayerService *playerservice.PlayerService
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		PlayerService: deps.PlayerService,
	}
}

// GetPlayerStats handles requests for the recent stat lines and career
// averages of a player.
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	var up filters.PlayerURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.PlayerStatsQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := filters.NewGetPlayerStatsFilter(&up, &qp)

	result, err := h.PlayerService.GetPlayerStats(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// TrackPlayer handles requests for adding an account to the tracked list.
func (h *PlayerHandler) TrackPlayer(c *gin.Context) {
	var body filters.TrackPlayerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.PlayerService.TrackPlayer(&body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// UntrackPlayer handles requests for removing an account from the tracked
// list.
func (h *PlayerHandler) UntrackPlayer(c *gin.Context) {
	var body filters.TrackPlayerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.PlayerService.UntrackPlayer(&body)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account is not tracked"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
