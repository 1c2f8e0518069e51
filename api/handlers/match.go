package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"shootystats/api/filters"
	matchservice "shootystats/api/services/match"
	"shootystats/pkg/messages"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchHandler is the handler for the match endpoints.
type MatchHandler struct {
	MatchService *matchservice.MatchService
}

type MatchHandlerDependencies struct {
	MatchService *matchservice.MatchService
}

// NewMatchHandler creates a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		MatchService: deps.MatchService,
	}
}

// GetMatchStats handles requests for the full scoreboard of a match.
func (h *MatchHandler) GetMatchStats(c *gin.Context) {
	var up filters.MatchURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.MatchQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := filters.NewGetMatchStatsFilter(&up, &qp)

	result, err := h.MatchService.GetMatchStats(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf(messages.MatchNotFound, up.MatchId)})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
