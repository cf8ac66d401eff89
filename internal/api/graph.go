package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// GraphHandler serves traversal endpoints.
type GraphHandler struct {
	repo GraphRepository
	log  *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(repo GraphRepository, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{repo: repo, log: log}
}

// traversal runs fn and writes the shared traversal response shape.
func (h *GraphHandler) traversal(c *gin.Context, op string, fn func(start, target string) (*models.TraversalResult, error)) {
	start := c.Param("start")
	if err := validatePathID(start); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	target := c.Query("target")

	res, err := fn(start, target)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "start node not found")

			return
		}

		h.log.WithError(err).WithField("op", op).Error("traversal failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

// BFS handles GET /api/v1/graph/bfs/:start.
func (h *GraphHandler) BFS(c *gin.Context) {
	h.traversal(c, "bfs", h.repo.BFS)
}

// DFS handles GET /api/v1/graph/dfs/:start.
func (h *GraphHandler) DFS(c *gin.Context) {
	h.traversal(c, "dfs", h.repo.DFS)
}

// Path handles GET /api/v1/graph/path/:from/:to.
func (h *GraphHandler) Path(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if validatePathID(from) != nil || validatePathID(to) != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid path endpoints")

		return
	}

	res, err := h.repo.ShortestPath(from, to)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("computing shortest path")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}

// Paths handles GET /api/v1/graph/paths/:from/:to.
func (h *GraphHandler) Paths(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if validatePathID(from) != nil || validatePathID(to) != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid path endpoints")

		return
	}

	// Zero means uncapped; the enumeration guard rejects that on large graphs.
	maxLength, _ := strconv.Atoi(c.DefaultQuery("max_length", "0"))

	res, err := h.repo.AllSimplePaths(from, to, maxLength)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNodeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")
		case errors.Is(err, models.ErrInvalidArgument):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("enumerating paths")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusOK, res)
}

// Neighbors handles GET /api/v1/graph/neighbors/:id.
func (h *GraphHandler) Neighbors(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	neighbors, err := h.repo.Neighbors(nodeID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("listing neighbors")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"node_id": nodeID, "neighbors": neighbors, "count": len(neighbors)})
}
