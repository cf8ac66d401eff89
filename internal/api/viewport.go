package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// Viewport query defaults.
const (
	defaultViewportRadius = 2
	defaultViewportLimit  = 100
)

// ViewportHandler serves the fish-eye viewport endpoint.
type ViewportHandler struct {
	repo ViewportRepository
	log  *logrus.Logger
}

// NewViewportHandler creates a ViewportHandler with the given service and logger.
func NewViewportHandler(repo ViewportRepository, log *logrus.Logger) *ViewportHandler {
	return &ViewportHandler{repo: repo, log: log}
}

// Get handles GET /api/v1/viewport/:id.
func (h *ViewportHandler) Get(c *gin.Context) {
	center := c.Param("id")
	if err := validatePathID(center); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	radius := parseInt(c.DefaultQuery("radius", "2"), defaultViewportRadius)
	limit := parseInt(c.DefaultQuery("limit", "100"), defaultViewportLimit)

	res, err := h.repo.Viewport(center, radius, limit)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNodeNotFound):
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "center node not found")
		case errors.Is(err, models.ErrInvalidArgument):
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
		default:
			h.log.WithError(err).Error("extracting viewport")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
		}

		return
	}

	c.JSON(http.StatusOK, res)
}
