// Package service provides business logic between API handlers and the
// graph store: mutation event publishing, gauge upkeep, and query logging.
package service

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/metrics"
	"github.com/graphpane/graphpane/internal/store"
)

// Publisher broadcasts graph mutation events to WebSocket clients.
// *ws.Hub satisfies it; nil disables publishing.
type Publisher interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}

// publish marshals payload and broadcasts it (best-effort, non-blocking).
func publish(p Publisher, log *logrus.Logger, eventType string, payload map[string]any) {
	if p == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).WithField("event", eventType).Error("failed to marshal event payload")
		return
	}

	p.BroadcastEvent(eventType, data)
}

// refreshGauges resyncs the node/edge gauges from the store counters.
func refreshGauges(s *store.GraphStore) {
	stats := s.Stats()
	metrics.NodeCount.Set(float64(stats.Nodes))
	metrics.EdgeCount.Set(float64(stats.Edges))
}
