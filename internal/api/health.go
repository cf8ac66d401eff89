// Package api provides HTTP handlers for graphpane.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/ws"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	graph     GraphRepository
	hub       *ws.Hub
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(graph GraphRepository, hub *ws.Hub, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		graph:     graph,
		hub:       hub,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Nodes         int     `json:"nodes"`
	Edges         int     `json:"edges"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health. The store is in-memory, so liveness
// doubles as readiness: if the process answers, it can serve.
func (h *HealthHandler) Liveness(c *gin.Context) {
	stats := h.graph.Stats()

	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Nodes:         stats.Nodes,
		Edges:         stats.Edges,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.hub != nil {
		resp.WSClients = h.hub.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}
