package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// maxImportBody caps the adjacency-list import payload.
const maxImportBody = 10 << 20

// SnapshotHandler serves whole-graph export/import endpoints.
type SnapshotHandler struct {
	repo SnapshotRepository
	log  *logrus.Logger
}

// NewSnapshotHandler creates a SnapshotHandler with the given service and logger.
func NewSnapshotHandler(repo SnapshotRepository, log *logrus.Logger) *SnapshotHandler {
	return &SnapshotHandler{repo: repo, log: log}
}

// Export handles GET /api/v1/export.
func (h *SnapshotHandler) Export(c *gin.Context) {
	doc, err := h.repo.ExportJSON()
	if err != nil {
		h.log.WithError(err).Error("exporting graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, doc)
}

// Import handles POST /api/v1/import. The previous graph contents are
// replaced wholesale.
func (h *SnapshotHandler) Import(c *gin.Context) {
	var doc models.GraphDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	stats, err := h.repo.ImportJSON(&doc)
	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("importing graph")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": true, "stats": stats})
}

// ExportAdjacency handles GET /api/v1/export/adjacency.
func (h *SnapshotHandler) ExportAdjacency(c *gin.Context) {
	c.String(http.StatusOK, h.repo.ExportAdjacency())
}

// ImportAdjacency handles POST /api/v1/import/adjacency with a text/plain body.
func (h *SnapshotHandler) ImportAdjacency(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBody))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "unreadable request body")

		return
	}

	stats, err := h.repo.ImportAdjacency(string(body))
	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("importing adjacency list")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": true, "stats": stats})
}

// Clear handles DELETE /api/v1/graph.
func (h *SnapshotHandler) Clear(c *gin.Context) {
	h.repo.Clear()

	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
