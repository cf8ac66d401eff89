package models

import "fmt"

// Edge represents a relationship between two nodes. On undirected graphs an
// edge is logically one entity reported once, regardless of which direction
// it was added in.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label,omitempty"`
}

// Neighbor is one adjacency-list entry: an outgoing reference from a node.
type Neighbor struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
	Label  string  `json:"label,omitempty"`
}

// DefaultWeight is used when a create request omits the weight.
const DefaultWeight = 1.0

// maxEdgeLabelLen caps the optional edge label.
const maxEdgeLabelLen = 255

// CreateEdgeRequest is the payload for creating a new edge.
type CreateEdgeRequest struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight *float64 `json:"weight,omitempty"`
	Label  string   `json:"label,omitempty"`
}

// Validate checks that required fields are present and the weight is
// non-negative. Negative weights are rejected here so Dijkstra correctness
// holds for every edge in the store.
func (r *CreateEdgeRequest) Validate() error {
	if r.From == "" {
		return ErrMissingFrom
	}

	if err := ValidateID("from", r.From); err != nil {
		return err
	}

	if r.To == "" {
		return ErrMissingTo
	}

	if err := ValidateID("to", r.To); err != nil {
		return err
	}

	if r.Weight != nil && *r.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidArgument)
	}

	if len(r.Label) > maxEdgeLabelLen {
		return ErrFieldTooLong("label", maxEdgeLabelLen)
	}

	return nil
}

// WeightOrDefault returns the requested weight, or DefaultWeight if unset.
func (r *CreateEdgeRequest) WeightOrDefault() float64 {
	if r.Weight != nil {
		return *r.Weight
	}

	return DefaultWeight
}
