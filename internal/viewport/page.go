package viewport

import (
	"fmt"
	"strings"

	"github.com/graphpane/graphpane/internal/models"
)

// GetPage returns one page of flat skip/limit pagination over the node set
// in insertion order. nodeType narrows to nodes whose "node_type" data key
// matches exactly; query keeps nodes whose id or label contains it,
// case-insensitively. Edges includes only edges with both endpoints in the
// page, so the client never resolves an off-page id.
func GetPage(g Graph, skip, limit int, nodeType, query string) (*models.PageResult, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative, got %d", models.ErrInvalidArgument, skip)
	}

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", models.ErrInvalidArgument, limit)
	}

	matched, err := filterNodes(g, nodeType, query)
	if err != nil {
		return nil, err
	}

	total := len(matched)

	start := skip
	if start > total {
		start = total
	}

	end := start + limit
	if end > total {
		end = total
	}

	page := matched[start:end]

	ids := make([]string, 0, len(page))
	for _, n := range page {
		ids = append(ids, n.ID)
	}

	return &models.PageResult{
		Nodes:      page,
		Edges:      g.EdgesAmong(ids),
		Total:      total,
		Skip:       skip,
		Limit:      limit,
		HasMore:    end < total,
		Page:       skip/limit + 1,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func filterNodes(g Graph, nodeType, query string) ([]models.Node, error) {
	query = strings.ToLower(query)

	matched := []models.Node{}
	for _, id := range g.AllNodes() {
		node, err := g.Node(id)
		if err != nil {
			return nil, fmt.Errorf("page node %q: %w", id, err)
		}

		if nodeType != "" && node.Type() != nodeType {
			continue
		}

		if query != "" &&
			!strings.Contains(strings.ToLower(node.ID), query) &&
			!strings.Contains(strings.ToLower(node.Label()), query) {
			continue
		}

		matched = append(matched, *node)
	}

	return matched, nil
}
