// Package traverse implements the graph traversal algorithm suite: BFS,
// DFS, Dijkstra shortest path, and all-simple-paths enumeration.
//
// Every algorithm is a pure function reading the graph through the Graph
// interface only, so any store backend can be substituted. Neighbor visit
// order is the order Neighbors returns (adjacency insertion order), which
// makes every result deterministic and reproducible on a fixed graph.
package traverse

import (
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// Graph is the read surface the algorithms run against.
type Graph interface {
	NodeExists(id string) bool
	Neighbors(id string) []models.Neighbor
	NodeCount() int
}

// BFS performs a queue-based level-order walk from start. When target is
// non-empty the walk stops as soon as target is dequeued. Distances are
// hop counts from start.
func BFS(g Graph, start, target string) (*models.TraversalResult, error) {
	if !g.NodeExists(start) {
		return nil, fmt.Errorf("bfs from %q: %w", start, models.ErrNodeNotFound)
	}

	res := &models.TraversalResult{
		Visited:   []string{},
		Distances: map[string]int{start: 0},
		Path:      []string{},
	}

	parent := map[string]string{}
	seen := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		res.Visited = append(res.Visited, current)

		if target != "" && current == target {
			res.Found = true
			res.Path = reconstructPath(parent, start, target)

			return res, nil
		}

		for _, n := range g.Neighbors(current) {
			if seen[n.To] {
				continue
			}

			seen[n.To] = true
			parent[n.To] = current
			res.Distances[n.To] = res.Distances[current] + 1
			queue = append(queue, n.To)
		}
	}

	// Queue drained without dequeuing the target: unreachable.
	if target == "" {
		res.Found = true
	}

	return res, nil
}

// DFS performs a depth-first walk from start, with the same bookkeeping
// and early exit as BFS but in depth-first visit order.
func DFS(g Graph, start, target string) (*models.TraversalResult, error) {
	if !g.NodeExists(start) {
		return nil, fmt.Errorf("dfs from %q: %w", start, models.ErrNodeNotFound)
	}

	res := &models.TraversalResult{
		Visited: []string{},
		Path:    []string{},
	}

	parent := map[string]string{}
	seen := map[string]bool{}

	var walk func(id string) bool
	walk = func(id string) bool {
		seen[id] = true
		res.Visited = append(res.Visited, id)

		if target != "" && id == target {
			return true
		}

		for _, n := range g.Neighbors(id) {
			if seen[n.To] {
				continue
			}

			parent[n.To] = id
			if walk(n.To) {
				return true
			}
		}

		return false
	}

	found := walk(start)

	if target == "" {
		res.Found = true
	} else if found {
		res.Found = true
		res.Path = reconstructPath(parent, start, target)
	}

	return res, nil
}

// reconstructPath walks the parent map back from end to start. Returns an
// empty path if end was never reached from start.
func reconstructPath(parent map[string]string, start, end string) []string {
	path := []string{end}

	current := end
	for current != start {
		p, ok := parent[current]
		if !ok {
			return []string{}
		}

		path = append(path, p)
		current = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ShortestPath finds the lowest-cost path from source to target: Dijkstra
// on weighted graphs, BFS hop count otherwise. An unreachable target is a
// normal Found=false result.
func ShortestPath(g Graph, source, target string, weighted bool) (*models.PathResult, error) {
	if weighted {
		return Dijkstra(g, source, target)
	}

	res, err := BFS(g, source, target)
	if err != nil {
		return nil, err
	}

	if !g.NodeExists(target) {
		return nil, fmt.Errorf("shortest path to %q: %w", target, models.ErrNodeNotFound)
	}

	if len(res.Path) == 0 {
		return &models.PathResult{Path: []string{}}, nil
	}

	return &models.PathResult{
		Path:     res.Path,
		Distance: float64(len(res.Path) - 1),
		Found:    true,
	}, nil
}
