// Package models defines data types for the graph store.
package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Node represents a vertex in the graph. Data is an opaque JSON payload the
// store never interprets; the paginator reads the conventional "label" and
// "node_type" keys for filtering, nothing else does.
type Node struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Label returns the conventional display label from the data payload,
// falling back to the node ID.
func (n *Node) Label() string {
	if s, ok := n.Data["label"].(string); ok && s != "" {
		return s
	}

	return n.ID
}

// Type returns the conventional node type from the data payload, or "" if unset.
func (n *Node) Type() string {
	s, _ := n.Data["node_type"].(string)

	return s
}

// CreateNodeRequest is the payload for creating a new node.
type CreateNodeRequest struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data,omitempty"`
}

// Validate checks CreateNodeRequest fields. If ID is empty, a UUID is
// auto-generated.
func (r *CreateNodeRequest) Validate() error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	if err := ValidateID("id", r.ID); err != nil {
		return err
	}

	return validateDataPayload(r.Data)
}

// UpdateNodeRequest is the payload for replacing a node's data wholesale.
type UpdateNodeRequest struct {
	Data map[string]any `json:"data"`
}

// Validate checks UpdateNodeRequest fields.
func (r *UpdateNodeRequest) Validate() error {
	return validateDataPayload(r.Data)
}

// maxIDLen caps node identifiers; maxDataLen caps the serialized data payload.
const (
	maxIDLen   = 255
	maxDataLen = 65536
)

// ValidateID checks that an identifier is non-empty, within length limits,
// and free of the ':' key-segment separator. IDs containing ':' would
// collide with the store's namespaced key encoding.
func ValidateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, field)
	}

	if len(id) > maxIDLen {
		return ErrFieldTooLong(field, maxIDLen)
	}

	if strings.Contains(id, ":") {
		return fmt.Errorf("%w: %s must not contain ':'", ErrInvalidArgument, field)
	}

	return nil
}

func validateDataPayload(data map[string]any) error {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: invalid data: %v", ErrInvalidArgument, err)
	}

	if len(raw) > maxDataLen {
		return ErrFieldTooLong("data", maxDataLen)
	}

	return nil
}
