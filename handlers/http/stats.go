package httpHandler

import (
	"helpdesk-server/usecases"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	useCase *usecases.StatsUseCase
}

func NewStatsHandler(useCase *usecases.StatsUseCase) *StatsHandler {
	return &StatsHandler{useCase: useCase}
}

// GetOverview handles GET /api/stats/overview
func (h *StatsHandler) GetOverview(c *gin.Context) {
	overview, err := h.useCase.GetOverview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": overview})
}

// GetDaily handles GET /api/stats/daily?days=
func (h *StatsHandler) GetDaily(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	daily, err := h.useCase.GetDaily(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute daily stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": daily})
}
