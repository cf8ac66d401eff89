package traverse

import (
	"container/heap"
	"fmt"

	"github.com/graphpane/graphpane/internal/models"
)

// pqItem is one priority-queue entry. seq is a monotonically increasing
// insertion counter: equal distances pop in FIFO order, which keeps
// Dijkstra's output deterministic on graphs with symmetric weights.
type pqItem struct {
	id   string
	dist float64
	seq  int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Dijkstra finds the minimum-weight path from source to target over
// non-negative edge weights (the store rejects negative weights at
// AddEdge time). An unreachable target yields Found=false, not an error.
func Dijkstra(g Graph, source, target string) (*models.PathResult, error) {
	if !g.NodeExists(source) {
		return nil, fmt.Errorf("dijkstra from %q: %w", source, models.ErrNodeNotFound)
	}

	if !g.NodeExists(target) {
		return nil, fmt.Errorf("dijkstra to %q: %w", target, models.ErrNodeNotFound)
	}

	dist := map[string]float64{source: 0}
	parent := map[string]string{}
	done := map[string]bool{}

	seq := 0
	pq := &priorityQueue{{id: source, dist: 0, seq: seq}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true

		if item.id == target {
			break
		}

		for _, n := range g.Neighbors(item.id) {
			candidate := item.dist + n.Weight

			if best, ok := dist[n.To]; ok && candidate >= best {
				continue
			}

			dist[n.To] = candidate
			parent[n.To] = item.id
			seq++
			heap.Push(pq, pqItem{id: n.To, dist: candidate, seq: seq})
		}
	}

	if !done[target] {
		return &models.PathResult{Path: []string{}}, nil
	}

	return &models.PathResult{
		Path:     reconstructPath(parent, source, target),
		Distance: dist[target],
		Found:    true,
	}, nil
}
