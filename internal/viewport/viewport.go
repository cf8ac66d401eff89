// Package viewport implements fish-eye viewport extraction and flat
// pagination over the graph, the two read paths a renderer uses to show a
// large graph without loading it in full.
//
// Like the traversal suite it reads the graph through an interface only,
// so callers hand it a consistent store view and any backend can be
// substituted.
package viewport

import (
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// Graph is the read surface viewport extraction runs against. The store's
// transactional view satisfies it.
type Graph interface {
	NodeExists(id string) bool
	Node(id string) (*models.Node, error)
	Neighbors(id string) []models.Neighbor
	AllNodes() []string
	NodeCount() int
	Directed() bool
	EdgesAmong(ids []string) []models.Edge
}

// GetViewport extracts the neighborhood around center, bounded in two
// independent dimensions: radius caps hop distance, limit caps total node
// count (center included). Expansion is level-by-level; when a level would
// overflow limit it is cut within the level in discovery order and
// Truncated is set, so the returned subgraph stays connected around the
// focus node. On directed graphs expansion follows edges in both
// directions, since a renderer wants the visual neighborhood rather than
// the reachable set.
func GetViewport(g Graph, center string, radius, limit int) (*models.ViewportResult, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: radius must be at least 1, got %d", models.ErrInvalidArgument, radius)
	}

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", models.ErrInvalidArgument, limit)
	}

	centerNode, err := g.Node(center)
	if err != nil {
		return nil, fmt.Errorf("viewport center %q: %w", center, err)
	}

	res := &models.ViewportResult{
		Center: center,
		Radius: radius,
		Nodes:  []models.ViewportNode{{Node: *centerNode, Distance: 0}},
		Levels: map[int]int{0: 1},
	}

	reverse := reverseIndex(g)

	seen := map[string]bool{center: true}
	frontier := []string{center}

	for depth := 1; depth <= radius && len(frontier) > 0; depth++ {
		// Discover the whole level first so truncation happens within
		// it, never by skipping it.
		var discovered []string
		for _, id := range frontier {
			for _, n := range expansionNeighbors(g, reverse, id) {
				if seen[n] {
					continue
				}

				seen[n] = true
				discovered = append(discovered, n)
			}
		}

		frontier = frontier[:0]
		for _, id := range discovered {
			if len(res.Nodes) >= limit {
				res.Truncated = true

				return finishViewport(g, res), nil
			}

			node, err := g.Node(id)
			if err != nil {
				return nil, fmt.Errorf("viewport node %q: %w", id, err)
			}

			res.Nodes = append(res.Nodes, models.ViewportNode{Node: *node, Distance: depth})
			res.Levels[depth]++
			frontier = append(frontier, id)
		}
	}

	return finishViewport(g, res), nil
}

// ExpandNeighbors returns every node within depth hops of id with no node
// count cap, for "expand this node" interactions. Depth is expected to be
// small; callers wanting a bounded result use GetViewport.
func ExpandNeighbors(g Graph, id string, depth int) (*models.ExpansionResult, error) {
	if depth < 1 {
		depth = 1
	}

	vp, err := GetViewport(g, id, depth, g.NodeCount()+1)
	if err != nil {
		return nil, err
	}

	// Drop the center itself; the client already has it.
	neighbors := vp.Nodes[1:]

	return &models.ExpansionResult{
		NodeID:    id,
		Neighbors: neighbors,
		Edges:     vp.Edges,
		Count:     len(neighbors),
	}, nil
}

// reverseIndex builds the incoming-edge adjacency for a directed graph,
// once per request. Nil for undirected graphs, whose adjacency already
// carries both directions.
func reverseIndex(g Graph) map[string][]string {
	if !g.Directed() {
		return nil
	}

	reverse := map[string][]string{}
	for _, id := range g.AllNodes() {
		for _, n := range g.Neighbors(id) {
			reverse[n.To] = append(reverse[n.To], id)
		}
	}

	return reverse
}

// expansionNeighbors lists the ids adjacent to id for viewport purposes:
// outgoing neighbors first, then incoming ones on directed graphs.
func expansionNeighbors(g Graph, reverse map[string][]string, id string) []string {
	out := g.Neighbors(id)

	ids := make([]string, 0, len(out)+len(reverse[id]))
	for _, n := range out {
		ids = append(ids, n.To)
	}
	ids = append(ids, reverse[id]...)

	return ids
}

func finishViewport(g Graph, res *models.ViewportResult) *models.ViewportResult {
	ids := make([]string, 0, len(res.Nodes))
	for _, n := range res.Nodes {
		ids = append(ids, n.ID)
	}

	res.Edges = g.EdgesAmong(ids)

	return res
}
