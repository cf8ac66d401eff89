package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the graph statistics endpoint.
type StatsHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given service and logger.
func NewStatsHandler(repo GraphRepository, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{repo: repo, log: log}
}

// GetStats handles GET /api/v1/stats.
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.Stats())
}
