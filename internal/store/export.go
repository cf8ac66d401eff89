package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/graphpane/graphpane/internal/models"
)

// ExportJSON snapshots the whole graph as a GraphDocument.
func (s *GraphStore) ExportJSON() (*models.GraphDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := &models.GraphDocument{
		Directed: s.directed,
		Weighted: s.weighted,
		Nodes:    make([]models.Node, 0, s.counter(metaNodeCount)),
		Edges:    s.allEdges(),
	}

	for _, id := range s.registry() {
		n, err := s.getNode(id)
		if err != nil {
			return nil, fmt.Errorf("exporting node %q: %w", id, err)
		}

		doc.Nodes = append(doc.Nodes, *n)
	}

	if doc.Edges == nil {
		doc.Edges = []models.Edge{}
	}

	return doc, nil
}

// ImportJSON replaces the entire graph with the document's contents. The
// document's directed/weighted flags must match the store's; those flags
// are fixed at construction and flipping them mid-flight would change the
// semantics of every existing query. The whole document is validated before
// the previous graph is dropped, so a rejected import leaves the store
// untouched.
func (s *GraphStore) ImportJSON(doc *models.GraphDocument) error {
	if err := s.validateDocument(doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()

	for _, n := range doc.Nodes {
		if err := s.addNodeLocked(n.ID, n.Data); err != nil {
			return err
		}
	}

	for _, e := range doc.Edges {
		w := e.Weight
		if w == 0 && !doc.Weighted {
			w = models.DefaultWeight
		}

		if err := s.addEdgeLocked(e.From, e.To, w, e.Label); err != nil {
			return err
		}
	}

	return nil
}

// validateDocument checks a GraphDocument in full: flag match, valid and
// unique node IDs, and edges that reference listed nodes exactly once with
// non-negative weights. Nothing is written until it passes.
func (s *GraphStore) validateDocument(doc *models.GraphDocument) error {
	if doc.Directed != s.directed || doc.Weighted != s.weighted {
		return fmt.Errorf("%w: document is directed=%t weighted=%t, store is directed=%t weighted=%t",
			models.ErrInvalidArgument, doc.Directed, doc.Weighted, s.directed, s.weighted)
	}

	nodes := make(map[string]bool, len(doc.Nodes))
	for i := range doc.Nodes {
		id := doc.Nodes[i].ID
		if err := models.ValidateID("id", id); err != nil {
			return err
		}

		if nodes[id] {
			return fmt.Errorf("%w: node %q listed twice", models.ErrInvalidArgument, id)
		}
		nodes[id] = true
	}

	pairs := make(map[[2]string]bool, len(doc.Edges))
	for _, e := range doc.Edges {
		if !nodes[e.From] || !nodes[e.To] {
			return fmt.Errorf("%w: edge %s->%s references a node missing from the document",
				models.ErrInvalidArgument, e.From, e.To)
		}

		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s->%s has negative weight", models.ErrInvalidArgument, e.From, e.To)
		}

		pair := s.canonicalPair(e.From, e.To)
		if pairs[pair] {
			return fmt.Errorf("%w: edge %s->%s listed twice", models.ErrInvalidArgument, e.From, e.To)
		}
		pairs[pair] = true
	}

	return nil
}

// ExportAdjacency renders the graph in adjacency-list text form:
//
//	A -> B, C
//	B -> D(2.5)
//
// Weights are included on weighted graphs only.
func (s *GraphStore) ExportAdjacency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder

	for i, id := range s.registry() {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(id)
		b.WriteString(" ->")

		for j, n := range s.adjacency(id) {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte(' ')
			b.WriteString(n.To)

			if s.weighted {
				b.WriteByte('(')
				b.WriteString(strconv.FormatFloat(n.Weight, 'g', -1, 64))
				b.WriteByte(')')
			}
		}
	}

	return b.String()
}

// ImportAdjacency replaces the graph with one parsed from adjacency-list
// text. Lines are "FROM -> TO, TO(WEIGHT), ..."; blank lines and lines
// starting with '#' are skipped. Nodes are created on first mention. The
// whole text is parsed and validated before the previous graph is dropped,
// so a rejected import leaves the store untouched.
func (s *GraphStore) ImportAdjacency(text string) error {
	nodes, edges, err := parseAdjacency(text, s.directed)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()

	for _, id := range nodes {
		if err := s.addNodeLocked(id, nil); err != nil {
			return err
		}
	}

	for _, e := range edges {
		if err := s.addEdgeLocked(e.From, e.To, e.Weight, ""); err != nil {
			return err
		}
	}

	return nil
}

// parseAdjacency parses adjacency-list text into a first-mention-ordered
// node list and a deduplicated edge list, without touching the store. An
// undirected export lists every edge in both stored directions, so a pair
// already seen (in either direction on undirected graphs) is skipped rather
// than rejected; a graph's own export always re-imports cleanly.
func parseAdjacency(text string, directed bool) ([]string, []models.Edge, error) {
	var nodes []string
	var edges []models.Edge

	seenNode := map[string]bool{}
	seenPair := map[[2]string]bool{}

	mention := func(id string) error {
		if err := models.ValidateID("id", id); err != nil {
			return err
		}

		if !seenNode[id] {
			seenNode[id] = true
			nodes = append(nodes, id)
		}

		return nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		from, rest, ok := strings.Cut(line, "->")
		if !ok {
			return nil, nil, fmt.Errorf("%w: line %q has no '->'", models.ErrInvalidArgument, line)
		}

		from = strings.TrimSpace(from)
		if err := mention(from); err != nil {
			return nil, nil, err
		}

		rest = strings.TrimSpace(rest)
		if rest == "" {
			continue
		}

		for _, dest := range strings.Split(rest, ",") {
			dest = strings.TrimSpace(dest)
			if dest == "" {
				continue
			}

			to, weight, err := parseDest(dest)
			if err != nil {
				return nil, nil, err
			}

			if err := mention(to); err != nil {
				return nil, nil, err
			}

			pair := [2]string{from, to}
			if !directed && to < from {
				pair = [2]string{to, from}
			}

			if seenPair[pair] {
				continue
			}
			seenPair[pair] = true

			edges = append(edges, models.Edge{From: from, To: to, Weight: weight})
		}
	}

	return nodes, edges, nil
}

// parseDest parses "B" or "B(1.5)" into a target and weight.
func parseDest(dest string) (string, float64, error) {
	open := strings.IndexByte(dest, '(')
	if open < 0 {
		return dest, models.DefaultWeight, nil
	}

	close := strings.IndexByte(dest, ')')
	if close < open {
		return "", 0, fmt.Errorf("%w: malformed destination %q", models.ErrInvalidArgument, dest)
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(dest[open+1:close]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: bad weight in %q", models.ErrInvalidArgument, dest)
	}

	if w < 0 {
		return "", 0, fmt.Errorf("%w: weight must be >= 0 in %q", models.ErrInvalidArgument, dest)
	}

	return strings.TrimSpace(dest[:open]), w, nil
}
