// Package store implements the graph store on top of a generic key-value
// index.
//
// The store owns the mapping from logical graph entities to KV keys; no
// other package constructs or parses these keys. Nodes, edges, and
// adjacency lists are kept in lock-step: every mutation orders its writes
// so an interruption between sub-steps never leaves an adjacency entry
// pointing at a node or edge that claims not to exist (edges are removed
// before the node record on cascade delete, and adjacency entries are
// written only after existence checks pass).
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
)

// Storage is the physical substrate the graph store writes through. It
// matches the kvindex contract; swapping in a different index touches
// nothing above this interface.
type Storage interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Delete(key string) bool
	Exists(key string) bool
	Count() int
	Keys() []string
	Clear()
}

// Key namespaces. IDs are validated upstream to never contain ':'.
const (
	nodePrefix = "node:"
	edgePrefix = "edge:"
	adjPrefix  = "adj:"

	metaDirected  = "meta:directed"
	metaWeighted  = "meta:weighted"
	metaNodeCount = "meta:node_count"
	metaEdgeCount = "meta:edge_count"
	metaNodes     = "meta:nodes" // insertion-ordered node registry
)

func nodeKey(id string) string       { return nodePrefix + id }
func adjKey(id string) string        { return adjPrefix + id }
func edgeKey(from, to string) string { return edgePrefix + from + ":" + to }

// GraphStore encodes nodes, edges, and adjacency lists as namespaced KV
// entries. A single coarse readers-writer lock guards the whole store;
// the data volumes here do not justify per-node locking.
type GraphStore struct {
	mu sync.RWMutex
	kv Storage

	// directed and weighted are fixed at construction and never written
	// again, so their accessors need no lock. Imports whose flags differ
	// are rejected instead of reconfiguring the store.
	directed bool
	weighted bool

	log *logrus.Logger
}

// New creates a GraphStore over the given storage and writes the graph
// metadata keys.
func New(kv Storage, directed, weighted bool, log *logrus.Logger) *GraphStore {
	s := &GraphStore{kv: kv, directed: directed, weighted: weighted, log: log}
	s.writeMeta()

	return s
}

func (s *GraphStore) writeMeta() {
	s.kv.Set(metaDirected, strconv.FormatBool(s.directed))
	s.kv.Set(metaWeighted, strconv.FormatBool(s.weighted))
	s.kv.Set(metaNodeCount, "0")
	s.kv.Set(metaEdgeCount, "0")
	s.kv.Set(metaNodes, "[]")
}

// Directed reports whether the graph is directed.
func (s *GraphStore) Directed() bool { return s.directed }

// Weighted reports whether the graph is weighted.
func (s *GraphStore) Weighted() bool { return s.weighted }

// Stats returns the denormalized graph counters.
func (s *GraphStore) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Stats{
		Nodes:     s.counter(metaNodeCount),
		Edges:     s.counter(metaEdgeCount),
		Directed:  s.directed,
		Weighted:  s.weighted,
		DBEntries: s.kv.Count(),
	}
}

// Clear removes every entity and resets the metadata keys.
func (s *GraphStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
}

func (s *GraphStore) clear() {
	s.kv.Clear()
	s.writeMeta()
}

// counter reads a meta counter, treating a missing or corrupt value as 0.
func (s *GraphStore) counter(key string) int {
	raw, ok := s.kv.Get(key)
	if !ok {
		return 0
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{"key": key, "value": raw}).Warn("corrupt counter, treating as 0")

		return 0
	}

	return n
}

func (s *GraphStore) bumpCounter(key string, delta int) {
	n := s.counter(key) + delta
	if n < 0 {
		n = 0
	}
	s.kv.Set(key, strconv.Itoa(n))
}

// registry reads the insertion-ordered node ID list.
func (s *GraphStore) registry() []string {
	raw, ok := s.kv.Get(metaNodes)
	if !ok {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.WithError(err).Warn("corrupt node registry")

		return nil
	}

	return ids
}

func (s *GraphStore) writeRegistry(ids []string) {
	raw, _ := json.Marshal(ids) //nolint:errcheck // string slice, cannot fail.
	s.kv.Set(metaNodes, string(raw))
}

// adjacency reads a node's adjacency list; missing or corrupt lists read
// as empty.
func (s *GraphStore) adjacency(id string) []models.Neighbor {
	raw, ok := s.kv.Get(adjKey(id))
	if !ok {
		return nil
	}

	var list []models.Neighbor
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.log.WithError(err).WithField("node_id", id).Warn("corrupt adjacency list")

		return nil
	}

	return list
}

func (s *GraphStore) writeAdjacency(id string, list []models.Neighbor) error {
	if list == nil {
		list = []models.Neighbor{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding adjacency for %q: %w", id, err)
	}

	s.kv.Set(adjKey(id), string(raw))

	return nil
}

// TxView is a read-consistent view of the graph, valid only inside the
// function passed to View. Traversal and viewport code runs against it so
// a multi-call walk observes one unmodified graph.
type TxView struct {
	s *GraphStore
}

// View runs fn while holding the store's read lock.
func (s *GraphStore) View(fn func(*TxView) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&TxView{s: s})
}

// NodeExists reports whether the node is present.
func (v *TxView) NodeExists(id string) bool { return v.s.nodeExists(id) }

// Node returns the node or models.ErrNodeNotFound.
func (v *TxView) Node(id string) (*models.Node, error) { return v.s.getNode(id) }

// Neighbors returns the node's adjacency list in insertion order.
func (v *TxView) Neighbors(id string) []models.Neighbor { return v.s.adjacency(id) }

// AllNodes returns every node ID in insertion order.
func (v *TxView) AllNodes() []string { return v.s.registry() }

// NodeCount returns the denormalized node counter.
func (v *TxView) NodeCount() int { return v.s.counter(metaNodeCount) }

// Directed reports whether the graph is directed.
func (v *TxView) Directed() bool { return v.s.directed }

// EdgesAmong returns the edges whose both endpoints are in ids, each
// undirected edge reported once, in adjacency insertion order.
func (v *TxView) EdgesAmong(ids []string) []models.Edge { return v.s.edgesAmong(ids) }
