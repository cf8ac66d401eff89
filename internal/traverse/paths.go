package traverse

import (
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// Enumeration guards. Simple-path enumeration is worst-case factorial in
// node count, so an uncapped request on a non-trivial graph is rejected
// rather than allowed to hang.
const (
	// DefaultPathsSafetyThreshold is the node count above which a
	// max-length cap becomes mandatory.
	DefaultPathsSafetyThreshold = 100

	// MaxPaths bounds the number of enumerated paths regardless of caps.
	MaxPaths = 1000
)

// AllSimplePaths enumerates every path from start to target that visits no
// node twice, in depth-first discovery order. maxLength caps the hop count
// of each path; zero or negative means uncapped, which is only allowed
// while the graph has at most safetyThreshold nodes
// (models.ErrInvalidArgument otherwise). Enumeration stops at MaxPaths and
// sets Truncated.
func AllSimplePaths(g Graph, start, target string, maxLength, safetyThreshold int) (*models.PathsResult, error) {
	if safetyThreshold <= 0 {
		safetyThreshold = DefaultPathsSafetyThreshold
	}

	if maxLength <= 0 && g.NodeCount() > safetyThreshold {
		return nil, fmt.Errorf("%w: graph has %d nodes; max_length is required above %d",
			models.ErrInvalidArgument, g.NodeCount(), safetyThreshold)
	}

	if !g.NodeExists(start) {
		return nil, fmt.Errorf("paths from %q: %w", start, models.ErrNodeNotFound)
	}

	if !g.NodeExists(target) {
		return nil, fmt.Errorf("paths to %q: %w", target, models.ErrNodeNotFound)
	}

	res := &models.PathsResult{Paths: [][]string{}}

	onPath := map[string]bool{start: true}
	path := []string{start}

	var walk func(current string)
	walk = func(current string) {
		if res.Truncated {
			return
		}

		if current == target {
			res.Paths = append(res.Paths, append([]string(nil), path...))
			if len(res.Paths) >= MaxPaths {
				res.Truncated = true
			}

			return
		}

		// maxLength counts hops, so a path of n nodes has n-1 hops.
		if maxLength > 0 && len(path)-1 >= maxLength {
			return
		}

		for _, n := range g.Neighbors(current) {
			if onPath[n.To] {
				continue
			}

			onPath[n.To] = true
			path = append(path, n.To)

			walk(n.To)

			path = path[:len(path)-1]
			delete(onPath, n.To)
		}
	}

	walk(start)

	return res, nil
}
