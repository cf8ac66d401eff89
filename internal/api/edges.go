package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// EdgeHandler serves edge CRUD endpoints.
type EdgeHandler struct {
	repo EdgeRepository
	log  *logrus.Logger
}

// NewEdgeHandler creates an EdgeHandler with the given service and logger.
func NewEdgeHandler(repo EdgeRepository, log *logrus.Logger) *EdgeHandler {
	return &EdgeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/edges.
func (h *EdgeHandler) List(c *gin.Context) {
	edges := h.repo.AllEdges()

	c.JSON(http.StatusOK, gin.H{"edges": edges, "count": len(edges)})
}

// Create handles POST /api/v1/edges.
func (h *EdgeHandler) Create(c *gin.Context) {
	var req models.CreateEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	edge, err := h.repo.CreateEdge(&req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNodeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge endpoint does not exist")
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeConflict, "edge already exists")
		case errors.Is(err, models.ErrInvalidArgument):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("creating edge")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusCreated, edge)
}

// Get handles GET /api/v1/edges/:from/:to.
func (h *EdgeHandler) Get(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if validatePathID(from) != nil || validatePathID(to) != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid edge endpoints")

		return
	}

	edge, err := h.repo.GetEdge(from, to)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("getting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, edge)
}

// Delete handles DELETE /api/v1/edges/:from/:to.
func (h *EdgeHandler) Delete(c *gin.Context) {
	from, to := c.Param("from"), c.Param("to")
	if validatePathID(from) != nil || validatePathID(to) != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid edge endpoints")

		return
	}

	if err := h.repo.DeleteEdge(from, to); err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("deleting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
