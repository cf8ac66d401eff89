package service

import (
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/ws"
)

// ExportImportService handles whole-graph snapshots in JSON and
// adjacency-list text form.
type ExportImportService struct {
	store *store.GraphStore
	hub   Publisher
	log   *logrus.Logger
}

// NewExportImportService creates an ExportImportService.
func NewExportImportService(store *store.GraphStore, hub Publisher, log *logrus.Logger) *ExportImportService {
	return &ExportImportService{store: store, hub: hub, log: log}
}

// ExportJSON returns a snapshot of the whole graph.
func (s *ExportImportService) ExportJSON() (*models.GraphDocument, error) {
	return s.store.ExportJSON()
}

// ImportJSON replaces the graph with the document's contents.
func (s *ExportImportService) ImportJSON(doc *models.GraphDocument) (models.Stats, error) {
	if err := s.store.ImportJSON(doc); err != nil {
		return models.Stats{}, err
	}

	stats := s.store.Stats()

	s.log.WithFields(logrus.Fields{
		"nodes": stats.Nodes,
		"edges": stats.Edges,
	}).Info("graph imported")

	publish(s.hub, s.log, ws.EventGraphImported, map[string]any{
		"nodes": stats.Nodes,
		"edges": stats.Edges,
	})
	refreshGauges(s.store)

	return stats, nil
}

// ExportAdjacency returns the graph as adjacency-list text.
func (s *ExportImportService) ExportAdjacency() string {
	return s.store.ExportAdjacency()
}

// ImportAdjacency replaces the graph with one parsed from adjacency-list
// text, creating referenced nodes on first mention.
func (s *ExportImportService) ImportAdjacency(text string) (models.Stats, error) {
	if err := s.store.ImportAdjacency(text); err != nil {
		return models.Stats{}, err
	}

	stats := s.store.Stats()

	s.log.WithFields(logrus.Fields{
		"nodes": stats.Nodes,
		"edges": stats.Edges,
	}).Info("adjacency list imported")

	publish(s.hub, s.log, ws.EventGraphImported, map[string]any{
		"nodes": stats.Nodes,
		"edges": stats.Edges,
	})
	refreshGauges(s.store)

	return stats, nil
}

// Clear drops every node and edge.
func (s *ExportImportService) Clear() {
	s.store.Clear()

	s.log.Info("graph cleared")

	publish(s.hub, s.log, ws.EventGraphCleared, map[string]any{})
	refreshGauges(s.store)
}
