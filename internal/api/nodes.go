package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// NodeHandler serves node CRUD endpoints.
type NodeHandler struct {
	repo  NodeRepository
	pager ViewportRepository
	log   *logrus.Logger
}

// NewNodeHandler creates a NodeHandler with the given services and logger.
func NewNodeHandler(repo NodeRepository, pager ViewportRepository, log *logrus.Logger) *NodeHandler {
	return &NodeHandler{repo: repo, pager: pager, log: log}
}

// List handles GET /api/v1/nodes.
func (h *NodeHandler) List(c *gin.Context) {
	nodeType := c.Query("type")
	query := c.Query("q")
	limit := parseInt(c.DefaultQuery("limit", "50"), 50)
	skip := parseOffset(c.DefaultQuery("skip", "0"))

	page, err := h.pager.Page(skip, limit, nodeType, query)
	if err != nil {
		h.log.WithError(err).Error("listing nodes")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/v1/nodes/:id.
func (h *NodeHandler) Get(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	node, err := h.repo.GetNode(nodeID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("getting node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, node)
}

// Create handles POST /api/v1/nodes.
func (h *NodeHandler) Create(c *gin.Context) {
	var req models.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	node, err := h.repo.CreateNode(&req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeConflict, "node with this ID already exists")

			return
		}

		if errors.Is(err, models.ErrInvalidArgument) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("creating node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, node)
}

// Update handles PUT /api/v1/nodes/:id.
func (h *NodeHandler) Update(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	node, err := h.repo.UpdateNode(nodeID, &req)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		if errors.Is(err, models.ErrInvalidArgument) {
			respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("updating node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, node)
}

// Delete handles DELETE /api/v1/nodes/:id.
func (h *NodeHandler) Delete(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteNode(nodeID); err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("deleting node")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Degree handles GET /api/v1/nodes/:id/degree.
func (h *NodeHandler) Degree(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	degree, err := h.repo.Degree(nodeID)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("computing node degree")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, degree)
}

// Expand handles GET /api/v1/nodes/:id/expand.
func (h *NodeHandler) Expand(c *gin.Context) {
	nodeID := c.Param("id")
	if err := validatePathID(nodeID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth := parseInt(c.DefaultQuery("depth", "1"), 1)

	res, err := h.pager.Expand(nodeID, depth)
	if err != nil {
		if errors.Is(err, models.ErrNodeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "node not found")

			return
		}

		h.log.WithError(err).Error("expanding node neighborhood")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, res)
}
