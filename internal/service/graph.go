package service

import (
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/traverse"
)

// GraphService runs the traversal algorithm suite against consistent store
// views, with query logging.
type GraphService struct {
	store           *store.GraphStore
	safetyThreshold int
	log             *logrus.Logger
}

// NewGraphService creates a GraphService. safetyThreshold bounds uncapped
// simple-path enumeration; zero means the built-in default.
func NewGraphService(store *store.GraphStore, safetyThreshold int, log *logrus.Logger) *GraphService {
	return &GraphService{store: store, safetyThreshold: safetyThreshold, log: log}
}

// BFS walks the graph breadth-first from start, stopping early if target is
// reached.
func (s *GraphService) BFS(start, target string) (*models.TraversalResult, error) {
	s.log.WithFields(logrus.Fields{
		"start":  start,
		"target": target,
	}).Debug("graph.bfs")

	var res *models.TraversalResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = traverse.BFS(v, start, target)

		return err
	})

	return res, err
}

// DFS walks the graph depth-first from start, stopping early if target is
// reached.
func (s *GraphService) DFS(start, target string) (*models.TraversalResult, error) {
	s.log.WithFields(logrus.Fields{
		"start":  start,
		"target": target,
	}).Debug("graph.dfs")

	var res *models.TraversalResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = traverse.DFS(v, start, target)

		return err
	})

	return res, err
}

// ShortestPath finds the lowest-cost path between two nodes: Dijkstra on
// weighted graphs, hop count otherwise.
func (s *GraphService) ShortestPath(from, to string) (*models.PathResult, error) {
	s.log.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Debug("graph.shortest_path")

	var res *models.PathResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = traverse.ShortestPath(v, from, to, s.store.Weighted())

		return err
	})

	return res, err
}

// AllSimplePaths enumerates every simple path between two nodes, capped at
// maxLength hops.
func (s *GraphService) AllSimplePaths(from, to string, maxLength int) (*models.PathsResult, error) {
	s.log.WithFields(logrus.Fields{
		"from":       from,
		"to":         to,
		"max_length": maxLength,
	}).Debug("graph.all_simple_paths")

	var res *models.PathsResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = traverse.AllSimplePaths(v, from, to, maxLength, s.safetyThreshold)

		return err
	})

	return res, err
}

// Neighbors returns the node's adjacency list in insertion order.
func (s *GraphService) Neighbors(id string) ([]models.Neighbor, error) {
	return s.store.Neighbors(id)
}

// Stats returns denormalized graph counters.
func (s *GraphService) Stats() models.Stats {
	return s.store.Stats()
}
