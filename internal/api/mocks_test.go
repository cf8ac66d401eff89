package api_test

import (
	"github.com/graphpane/graphpane/internal/models"
)

// mockNodeRepo implements api.NodeRepository for testing.
type mockNodeRepo struct {
	createFn func(req *models.CreateNodeRequest) (*models.Node, error)
	getFn    func(id string) (*models.Node, error)
	updateFn func(id string, req *models.UpdateNodeRequest) (*models.Node, error)
	deleteFn func(id string) error
	degreeFn func(id string) (*models.Degree, error)
}

func (m *mockNodeRepo) CreateNode(req *models.CreateNodeRequest) (*models.Node, error) {
	return m.createFn(req)
}

func (m *mockNodeRepo) GetNode(id string) (*models.Node, error) { return m.getFn(id) }

func (m *mockNodeRepo) UpdateNode(id string, req *models.UpdateNodeRequest) (*models.Node, error) {
	return m.updateFn(id, req)
}

func (m *mockNodeRepo) DeleteNode(id string) error { return m.deleteFn(id) }

func (m *mockNodeRepo) Degree(id string) (*models.Degree, error) { return m.degreeFn(id) }

// mockEdgeRepo implements api.EdgeRepository for testing.
type mockEdgeRepo struct {
	createFn func(req *models.CreateEdgeRequest) (*models.Edge, error)
	getFn    func(from, to string) (*models.Edge, error)
	deleteFn func(from, to string) error
	allFn    func() []models.Edge
}

func (m *mockEdgeRepo) CreateEdge(req *models.CreateEdgeRequest) (*models.Edge, error) {
	return m.createFn(req)
}

func (m *mockEdgeRepo) GetEdge(from, to string) (*models.Edge, error) { return m.getFn(from, to) }

func (m *mockEdgeRepo) DeleteEdge(from, to string) error { return m.deleteFn(from, to) }

func (m *mockEdgeRepo) AllEdges() []models.Edge { return m.allFn() }

// mockGraphRepo implements api.GraphRepository for testing.
type mockGraphRepo struct {
	bfsFn       func(start, target string) (*models.TraversalResult, error)
	dfsFn       func(start, target string) (*models.TraversalResult, error)
	pathFn      func(from, to string) (*models.PathResult, error)
	pathsFn     func(from, to string, maxLength int) (*models.PathsResult, error)
	neighborsFn func(id string) ([]models.Neighbor, error)
	statsFn     func() models.Stats
}

func (m *mockGraphRepo) BFS(start, target string) (*models.TraversalResult, error) {
	return m.bfsFn(start, target)
}

func (m *mockGraphRepo) DFS(start, target string) (*models.TraversalResult, error) {
	return m.dfsFn(start, target)
}

func (m *mockGraphRepo) ShortestPath(from, to string) (*models.PathResult, error) {
	return m.pathFn(from, to)
}

func (m *mockGraphRepo) AllSimplePaths(from, to string, maxLength int) (*models.PathsResult, error) {
	return m.pathsFn(from, to, maxLength)
}

func (m *mockGraphRepo) Neighbors(id string) ([]models.Neighbor, error) { return m.neighborsFn(id) }

func (m *mockGraphRepo) Stats() models.Stats { return m.statsFn() }

// mockViewportRepo implements api.ViewportRepository for testing.
type mockViewportRepo struct {
	viewportFn func(center string, radius, limit int) (*models.ViewportResult, error)
	pageFn     func(skip, limit int, nodeType, query string) (*models.PageResult, error)
	expandFn   func(id string, depth int) (*models.ExpansionResult, error)
}

func (m *mockViewportRepo) Viewport(center string, radius, limit int) (*models.ViewportResult, error) {
	return m.viewportFn(center, radius, limit)
}

func (m *mockViewportRepo) Page(skip, limit int, nodeType, query string) (*models.PageResult, error) {
	return m.pageFn(skip, limit, nodeType, query)
}

func (m *mockViewportRepo) Expand(id string, depth int) (*models.ExpansionResult, error) {
	return m.expandFn(id, depth)
}

// mockSnapshotRepo implements api.SnapshotRepository for testing.
type mockSnapshotRepo struct {
	exportFn    func() (*models.GraphDocument, error)
	importFn    func(doc *models.GraphDocument) (models.Stats, error)
	exportAdjFn func() string
	importAdjFn func(text string) (models.Stats, error)
	clearFn     func()
}

func (m *mockSnapshotRepo) ExportJSON() (*models.GraphDocument, error) { return m.exportFn() }

func (m *mockSnapshotRepo) ImportJSON(doc *models.GraphDocument) (models.Stats, error) {
	return m.importFn(doc)
}

func (m *mockSnapshotRepo) ExportAdjacency() string { return m.exportAdjFn() }

func (m *mockSnapshotRepo) ImportAdjacency(text string) (models.Stats, error) {
	return m.importAdjFn(text)
}

func (m *mockSnapshotRepo) Clear() { m.clearFn() }
