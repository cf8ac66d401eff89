package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Event types broadcast on graph mutations.
const (
	EventNodeCreated   = "node.created"
	EventNodeUpdated   = "node.updated"
	EventNodeDeleted   = "node.deleted"
	EventEdgeCreated   = "edge.created"
	EventEdgeDeleted   = "edge.deleted"
	EventGraphImported = "graph.imported"
	EventGraphCleared  = "graph.cleared"
)

// Event is the structured message sent to WebSocket clients.
type Event struct {
	Type string          `json:"type"`
	ID   uint64          `json:"id"`
	Data json.RawMessage `json:"data"`
	Time time.Time       `json:"time"`
}

// EventSequence issues monotonic event IDs so clients can detect gaps.
type EventSequence struct {
	counter atomic.Uint64
}

// NewEventSequence creates a new EventSequence.
func NewEventSequence() *EventSequence {
	return &EventSequence{}
}

// Next returns the next sequence number.
func (es *EventSequence) Next() uint64 {
	return es.counter.Add(1)
}
