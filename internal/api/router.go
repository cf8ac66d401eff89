package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/middleware"
	"github.com/graphpane/graphpane/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Hub         *ws.Hub
	Nodes       NodeRepository
	Edges       EdgeRepository
	Graph       GraphRepository
	Viewport    ViewportRepository
	Snapshot    SnapshotRepository
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Graph, deps.Hub, log, deps.Version)
	nodes := NewNodeHandler(deps.Nodes, deps.Viewport, log)
	edges := NewEdgeHandler(deps.Edges, log)
	graph := NewGraphHandler(deps.Graph, log)
	viewport := NewViewportHandler(deps.Viewport, log)
	snapshot := NewSnapshotHandler(deps.Snapshot, log)
	stats := NewStatsHandler(deps.Graph, log)

	api.GET("/health", health.Liveness)

	// Nodes.
	api.GET("/nodes", nodes.List)
	api.POST("/nodes", nodes.Create)
	api.GET("/nodes/:id", nodes.Get)
	api.PUT("/nodes/:id", nodes.Update)
	api.DELETE("/nodes/:id", nodes.Delete)
	api.GET("/nodes/:id/degree", nodes.Degree)
	api.GET("/nodes/:id/expand", nodes.Expand)

	// Edges.
	api.GET("/edges", edges.List)
	api.POST("/edges", edges.Create)
	api.GET("/edges/:from/:to", edges.Get)
	api.DELETE("/edges/:from/:to", edges.Delete)

	// Graph traversal.
	api.GET("/graph/bfs/:start", graph.BFS)
	api.GET("/graph/dfs/:start", graph.DFS)
	api.GET("/graph/path/:from/:to", graph.Path)
	api.GET("/graph/paths/:from/:to", graph.Paths)
	api.GET("/graph/neighbors/:id", graph.Neighbors)
	api.DELETE("/graph", snapshot.Clear)

	// Viewport.
	api.GET("/viewport/:id", viewport.Get)

	// Snapshots.
	api.GET("/export", snapshot.Export)
	api.POST("/import", snapshot.Import)
	api.GET("/export/adjacency", snapshot.ExportAdjacency)
	api.POST("/import/adjacency", snapshot.ImportAdjacency)

	// Stats.
	api.GET("/stats", stats.GetStats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
