package api

import (
	"github.com/graphpane/graphpane/internal/models"
)

// NodeRepository defines node operations used by NodeHandler.
type NodeRepository interface {
	CreateNode(req *models.CreateNodeRequest) (*models.Node, error)
	GetNode(id string) (*models.Node, error)
	UpdateNode(id string, req *models.UpdateNodeRequest) (*models.Node, error)
	DeleteNode(id string) error
	Degree(id string) (*models.Degree, error)
}

// EdgeRepository defines edge operations used by EdgeHandler.
type EdgeRepository interface {
	CreateEdge(req *models.CreateEdgeRequest) (*models.Edge, error)
	GetEdge(from, to string) (*models.Edge, error)
	DeleteEdge(from, to string) error
	AllEdges() []models.Edge
}

// GraphRepository defines traversal operations used by GraphHandler.
type GraphRepository interface {
	BFS(start, target string) (*models.TraversalResult, error)
	DFS(start, target string) (*models.TraversalResult, error)
	ShortestPath(from, to string) (*models.PathResult, error)
	AllSimplePaths(from, to string, maxLength int) (*models.PathsResult, error)
	Neighbors(id string) ([]models.Neighbor, error)
	Stats() models.Stats
}

// ViewportRepository defines viewport and pagination operations used by
// ViewportHandler and the node list endpoint.
type ViewportRepository interface {
	Viewport(center string, radius, limit int) (*models.ViewportResult, error)
	Page(skip, limit int, nodeType, query string) (*models.PageResult, error)
	Expand(id string, depth int) (*models.ExpansionResult, error)
}

// SnapshotRepository defines whole-graph import/export operations used by
// SnapshotHandler.
type SnapshotRepository interface {
	ExportJSON() (*models.GraphDocument, error)
	ImportJSON(doc *models.GraphDocument) (models.Stats, error)
	ExportAdjacency() string
	ImportAdjacency(text string) (models.Stats, error)
	Clear()
}
