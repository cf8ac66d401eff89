package service

import (
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/ws"
)

// NodeService wraps the store's node operations with event publishing and
// gauge upkeep.
type NodeService struct {
	store *store.GraphStore
	hub   Publisher
	log   *logrus.Logger
}

// NewNodeService creates a NodeService.
func NewNodeService(store *store.GraphStore, hub Publisher, log *logrus.Logger) *NodeService {
	return &NodeService{store: store, hub: hub, log: log}
}

// CreateNode validates the request and inserts the node.
func (s *NodeService) CreateNode(req *models.CreateNodeRequest) (*models.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.AddNode(req.ID, req.Data); err != nil {
		return nil, err
	}

	s.log.WithField("node_id", req.ID).Debug("node.create")

	publish(s.hub, s.log, ws.EventNodeCreated, map[string]any{"id": req.ID})
	refreshGauges(s.store)

	return s.store.GetNode(req.ID)
}

// GetNode returns a single node by ID (pass-through).
func (s *NodeService) GetNode(id string) (*models.Node, error) {
	return s.store.GetNode(id)
}

// UpdateNode replaces the node's data wholesale.
func (s *NodeService) UpdateNode(id string, req *models.UpdateNodeRequest) (*models.Node, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateNode(id, req.Data); err != nil {
		return nil, err
	}

	s.log.WithField("node_id", id).Debug("node.update")

	publish(s.hub, s.log, ws.EventNodeUpdated, map[string]any{"id": id})

	return s.store.GetNode(id)
}

// DeleteNode removes the node and every edge touching it.
func (s *NodeService) DeleteNode(id string) error {
	if err := s.store.DeleteNode(id); err != nil {
		return err
	}

	s.log.WithField("node_id", id).Debug("node.delete")

	publish(s.hub, s.log, ws.EventNodeDeleted, map[string]any{"id": id})
	refreshGauges(s.store)

	return nil
}

// Degree returns the node's in/out degree.
func (s *NodeService) Degree(id string) (*models.Degree, error) {
	return s.store.Degree(id)
}
