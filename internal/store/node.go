package store

import (
	"encoding/json"
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// AddNode creates a node with the given opaque data payload and an empty
// adjacency list. Returns models.ErrDuplicateKey if the ID is taken.
func (s *GraphStore) AddNode(id string, data map[string]any) error {
	if err := models.ValidateID("id", id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addNodeLocked(id, data)
}

func (s *GraphStore) addNodeLocked(id string, data map[string]any) error {
	if s.kv.Exists(nodeKey(id)) {
		return fmt.Errorf("adding node %q: %w", id, models.ErrDuplicateKey)
	}

	if data == nil {
		data = map[string]any{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding node %q: %w", id, err)
	}

	s.kv.Set(nodeKey(id), string(raw))

	if err := s.writeAdjacency(id, nil); err != nil {
		return err
	}

	s.writeRegistry(append(s.registry(), id))
	s.bumpCounter(metaNodeCount, 1)

	return nil
}

// GetNode returns the node or models.ErrNodeNotFound.
func (s *GraphStore) GetNode(id string) (*models.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getNode(id)
}

func (s *GraphStore) getNode(id string) (*models.Node, error) {
	raw, ok := s.kv.Get(nodeKey(id))
	if !ok {
		return nil, models.ErrNodeNotFound
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("decoding node %q: %w", id, err)
	}

	return &models.Node{ID: id, Data: data}, nil
}

// UpdateNode replaces the node's data payload wholesale.
func (s *GraphStore) UpdateNode(id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kv.Exists(nodeKey(id)) {
		return models.ErrNodeNotFound
	}

	if data == nil {
		data = map[string]any{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding node %q: %w", id, err)
	}

	s.kv.Set(nodeKey(id), string(raw))

	return nil
}

// NodeExists reports whether the node is present.
func (s *GraphStore) NodeExists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nodeExists(id)
}

func (s *GraphStore) nodeExists(id string) bool {
	return s.kv.Exists(nodeKey(id))
}

// AllNodes returns every node ID in insertion order.
func (s *GraphStore) AllNodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.registry()
}

// DeleteNode removes the node, every edge incident to it, and every
// adjacency reference to it. Edge cleanup happens strictly before the node
// record is removed, so an interruption mid-delete can leave an orphaned
// node but never a dangling adjacency pointer.
func (s *GraphStore) DeleteNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.kv.Exists(nodeKey(id)) {
		return models.ErrNodeNotFound
	}

	// Count the logical edges being removed. For undirected graphs both
	// directions of one edge are stored, so dedupe by unordered pair.
	removed := map[[2]string]bool{}

	for _, n := range s.adjacency(id) {
		removed[s.canonicalPair(id, n.To)] = true
	}

	// Incoming edges: patch every other node's adjacency list and drop the
	// corresponding edge records.
	for _, other := range s.registry() {
		if other == id {
			continue
		}

		list := s.adjacency(other)
		kept := list[:0]

		for _, n := range list {
			if n.To == id {
				removed[s.canonicalPair(other, id)] = true

				continue
			}
			kept = append(kept, n)
		}

		if len(kept) != len(list) {
			if err := s.writeAdjacency(other, kept); err != nil {
				return err
			}
		}

		s.kv.Delete(edgeKey(other, id))
		s.kv.Delete(edgeKey(id, other))
	}

	// Self-loop and remaining outgoing records.
	s.kv.Delete(edgeKey(id, id))

	s.kv.Delete(adjKey(id))
	s.kv.Delete(nodeKey(id))

	reg := s.registry()
	kept := reg[:0]
	for _, rid := range reg {
		if rid != id {
			kept = append(kept, rid)
		}
	}
	s.writeRegistry(kept)

	s.bumpCounter(metaEdgeCount, -len(removed))
	s.bumpCounter(metaNodeCount, -1)

	return nil
}

// canonicalPair returns the pair key used to count logical edges: ordered
// for directed graphs, sorted for undirected ones.
func (s *GraphStore) canonicalPair(from, to string) [2]string {
	if !s.directed && to < from {
		return [2]string{to, from}
	}

	return [2]string{from, to}
}

// Degree returns the in/out degree of a node. Out degree reads the
// adjacency list; in degree scans every other adjacency list.
func (s *GraphStore) Degree(id string) (*models.Degree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.nodeExists(id) {
		return nil, models.ErrNodeNotFound
	}

	out := len(s.adjacency(id))

	in := 0
	for _, other := range s.registry() {
		for _, n := range s.adjacency(other) {
			if n.To == id {
				in++

				break
			}
		}
	}

	return &models.Degree{In: in, Out: out, Total: in + out}, nil
}
