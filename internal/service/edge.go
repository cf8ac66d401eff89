package service

import (
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/ws"
)

// EdgeService wraps the store's edge operations with event publishing and
// gauge upkeep.
type EdgeService struct {
	store *store.GraphStore
	hub   Publisher
	log   *logrus.Logger
}

// NewEdgeService creates an EdgeService.
func NewEdgeService(store *store.GraphStore, hub Publisher, log *logrus.Logger) *EdgeService {
	return &EdgeService{store: store, hub: hub, log: log}
}

// CreateEdge validates the request and inserts the edge.
func (s *EdgeService) CreateEdge(req *models.CreateEdgeRequest) (*models.Edge, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.AddEdge(req.From, req.To, req.WeightOrDefault(), req.Label); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"from": req.From,
		"to":   req.To,
	}).Debug("edge.create")

	publish(s.hub, s.log, ws.EventEdgeCreated, map[string]any{"from": req.From, "to": req.To})
	refreshGauges(s.store)

	return s.store.GetEdge(req.From, req.To)
}

// GetEdge returns a single edge by endpoint pair (pass-through).
func (s *EdgeService) GetEdge(from, to string) (*models.Edge, error) {
	return s.store.GetEdge(from, to)
}

// DeleteEdge removes the edge, both directions on undirected graphs.
func (s *EdgeService) DeleteEdge(from, to string) error {
	if err := s.store.DeleteEdge(from, to); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Debug("edge.delete")

	publish(s.hub, s.log, ws.EventEdgeDeleted, map[string]any{"from": from, "to": to})
	refreshGauges(s.store)

	return nil
}

// AllEdges returns every edge in insertion order (pass-through).
func (s *EdgeService) AllEdges() []models.Edge {
	return s.store.AllEdges()
}
