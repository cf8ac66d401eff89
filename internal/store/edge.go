package store

import (
	"encoding/json"
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// edgeRecord is the stored value under an edge key.
type edgeRecord struct {
	Weight float64 `json:"weight"`
	Label  string  `json:"label,omitempty"`
}

// AddEdge creates an edge from -> to. Both endpoints must exist
// (models.ErrNodeNotFound) and the ordered pair must be new
// (models.ErrDuplicateKey). On undirected graphs the reverse direction is
// written in the same critical section, so readers never observe a
// half-added edge.
func (s *GraphStore) AddEdge(from, to string, weight float64, label string) error {
	if weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", models.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addEdgeLocked(from, to, weight, label)
}

func (s *GraphStore) addEdgeLocked(from, to string, weight float64, label string) error {
	if !s.kv.Exists(nodeKey(from)) {
		return fmt.Errorf("adding edge %s->%s: %w", from, to, models.ErrNodeNotFound)
	}

	if !s.kv.Exists(nodeKey(to)) {
		return fmt.Errorf("adding edge %s->%s: %w", from, to, models.ErrNodeNotFound)
	}

	if s.kv.Exists(edgeKey(from, to)) {
		return fmt.Errorf("adding edge %s->%s: %w", from, to, models.ErrDuplicateKey)
	}

	raw, err := json.Marshal(edgeRecord{Weight: weight, Label: label})
	if err != nil {
		return fmt.Errorf("encoding edge %s->%s: %w", from, to, err)
	}

	// Edge records first, adjacency entries after: a reader interrupted
	// between the two sees an edge without adjacency, never the reverse.
	s.kv.Set(edgeKey(from, to), string(raw))
	if !s.directed && from != to {
		s.kv.Set(edgeKey(to, from), string(raw))
	}

	if err := s.appendNeighbor(from, models.Neighbor{To: to, Weight: weight, Label: label}); err != nil {
		return err
	}

	if !s.directed && from != to {
		if err := s.appendNeighbor(to, models.Neighbor{To: from, Weight: weight, Label: label}); err != nil {
			return err
		}
	}

	s.bumpCounter(metaEdgeCount, 1)

	return nil
}

func (s *GraphStore) appendNeighbor(id string, n models.Neighbor) error {
	return s.writeAdjacency(id, append(s.adjacency(id), n))
}

// DeleteEdge removes the edge from -> to; on undirected graphs the reverse
// direction goes with it. Adjacency entries are removed before the edge
// records so no adjacency entry ever outlives its edge.
func (s *GraphStore) DeleteEdge(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kv.Exists(edgeKey(from, to)) {
		return fmt.Errorf("deleting edge %s->%s: %w", from, to, models.ErrEdgeNotFound)
	}

	if err := s.removeNeighbor(from, to); err != nil {
		return err
	}

	if !s.directed && from != to {
		if err := s.removeNeighbor(to, from); err != nil {
			return err
		}
	}

	s.kv.Delete(edgeKey(from, to))
	if !s.directed && from != to {
		s.kv.Delete(edgeKey(to, from))
	}

	s.bumpCounter(metaEdgeCount, -1)

	return nil
}

func (s *GraphStore) removeNeighbor(id, to string) error {
	list := s.adjacency(id)
	kept := list[:0]

	for _, n := range list {
		if n.To != to {
			kept = append(kept, n)
		}
	}

	return s.writeAdjacency(id, kept)
}

// GetEdge returns the edge from -> to or models.ErrEdgeNotFound.
func (s *GraphStore) GetEdge(from, to string) (*models.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.kv.Get(edgeKey(from, to))
	if !ok {
		return nil, models.ErrEdgeNotFound
	}

	var rec edgeRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decoding edge %s->%s: %w", from, to, err)
	}

	return &models.Edge{From: from, To: to, Weight: rec.Weight, Label: rec.Label}, nil
}

// EdgeExists reports whether the edge from -> to is present. On undirected
// graphs both directions report true.
func (s *GraphStore) EdgeExists(from, to string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.kv.Exists(edgeKey(from, to))
}

// Neighbors returns the node's adjacency list in insertion order, the
// primitive every traversal and viewport operation is built on.
func (s *GraphStore) Neighbors(id string) ([]models.Neighbor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.nodeExists(id) {
		return nil, models.ErrNodeNotFound
	}

	return s.adjacency(id), nil
}

// AllEdges returns every edge, walking nodes in insertion order and each
// adjacency list in insertion order. Undirected edges are reported once.
func (s *GraphStore) AllEdges() []models.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.allEdges()
}

func (s *GraphStore) allEdges() []models.Edge {
	var edges []models.Edge

	seen := map[[2]string]bool{}

	for _, id := range s.registry() {
		for _, n := range s.adjacency(id) {
			pair := s.canonicalPair(id, n.To)
			if seen[pair] {
				continue
			}
			seen[pair] = true

			edges = append(edges, models.Edge{From: id, To: n.To, Weight: n.Weight, Label: n.Label})
		}
	}

	return edges
}

// edgesAmong returns the edges whose both endpoints are in ids.
func (s *GraphStore) edgesAmong(ids []string) []models.Edge {
	in := make(map[string]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}

	edges := make([]models.Edge, 0, len(ids))
	seen := map[[2]string]bool{}

	for _, id := range ids {
		for _, n := range s.adjacency(id) {
			if !in[n.To] {
				continue
			}

			pair := s.canonicalPair(id, n.To)
			if seen[pair] {
				continue
			}
			seen[pair] = true

			edges = append(edges, models.Edge{From: id, To: n.To, Weight: n.Weight, Label: n.Label})
		}
	}

	return edges
}
