package service

import (
	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
	"github.com/graphpane/graphpane/internal/viewport"
)

// ViewportService runs viewport extraction and pagination against
// consistent store views, with query logging.
type ViewportService struct {
	store *store.GraphStore
	log   *logrus.Logger
}

// NewViewportService creates a ViewportService.
func NewViewportService(store *store.GraphStore, log *logrus.Logger) *ViewportService {
	return &ViewportService{store: store, log: log}
}

// Viewport extracts the radius- and size-bounded neighborhood around center.
func (s *ViewportService) Viewport(center string, radius, limit int) (*models.ViewportResult, error) {
	s.log.WithFields(logrus.Fields{
		"center": center,
		"radius": radius,
		"limit":  limit,
	}).Debug("viewport.get")

	var res *models.ViewportResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = viewport.GetViewport(v, center, radius, limit)

		return err
	})

	return res, err
}

// Page returns one page of flat pagination over the node set.
func (s *ViewportService) Page(skip, limit int, nodeType, query string) (*models.PageResult, error) {
	s.log.WithFields(logrus.Fields{
		"skip":  skip,
		"limit": limit,
		"type":  nodeType,
	}).Debug("viewport.page")

	var res *models.PageResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = viewport.GetPage(v, skip, limit, nodeType, query)

		return err
	})

	return res, err
}

// Expand returns every node within depth hops of id, uncapped.
func (s *ViewportService) Expand(id string, depth int) (*models.ExpansionResult, error) {
	s.log.WithFields(logrus.Fields{
		"node_id": id,
		"depth":   depth,
	}).Debug("viewport.expand")

	var res *models.ExpansionResult
	err := s.store.View(func(v *store.TxView) error {
		var err error
		res, err = viewport.ExpandNeighbors(v, id, depth)

		return err
	})

	return res, err
}
