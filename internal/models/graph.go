package models

// TraversalResult holds the outcome of a BFS or DFS walk.
type TraversalResult struct {
	Visited   []string       `json:"visited"`
	Distances map[string]int `json:"distances,omitempty"`
	Path      []string       `json:"path"`
	Found     bool           `json:"found"`
}

// PathResult holds a shortest path and its total cost. Found is false when
// the target is unreachable; that is a normal outcome, not an error.
type PathResult struct {
	Path     []string `json:"path"`
	Distance float64  `json:"distance"`
	Found    bool     `json:"found"`
}

// PathsResult holds every simple path found between two nodes. Truncated is
// set when enumeration stopped at the max-paths cap.
type PathsResult struct {
	Paths     [][]string `json:"paths"`
	Truncated bool       `json:"truncated"`
}

// Degree holds the in/out degree of a node.
type Degree struct {
	In    int `json:"in_degree"`
	Out   int `json:"out_degree"`
	Total int `json:"total"`
}

// Stats holds denormalized graph counters for O(1) stats queries.
type Stats struct {
	Nodes     int  `json:"nodes"`
	Edges     int  `json:"edges"`
	Directed  bool `json:"directed"`
	Weighted  bool `json:"weighted"`
	DBEntries int  `json:"db_entries"`
}

// ViewportNode is a node annotated with its hop distance from the viewport
// center, for progressive level-of-detail rendering.
type ViewportNode struct {
	Node
	Distance int `json:"distance_from_center"`
}

// ViewportResult holds a radius- and size-bounded neighborhood around a
// focus node. Truncated means the outermost level is a partial sample, not
// the complete frontier.
type ViewportResult struct {
	Center    string         `json:"center"`
	Radius    int            `json:"radius"`
	Nodes     []ViewportNode `json:"nodes"`
	Edges     []Edge         `json:"edges"`
	Levels    map[int]int    `json:"levels"`
	Truncated bool           `json:"truncated"`
}

// PageResult holds one page of flat skip/limit pagination over the node set.
// Edges includes only edges whose both endpoints are in this page.
type PageResult struct {
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
	Total      int    `json:"total"`
	Skip       int    `json:"skip"`
	Limit      int    `json:"limit"`
	HasMore    bool   `json:"has_more"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
}

// ExpansionResult holds the neighborhood returned by an "expand this node"
// interaction.
type ExpansionResult struct {
	NodeID    string         `json:"node_id"`
	Neighbors []ViewportNode `json:"neighbors"`
	Edges     []Edge         `json:"edges"`
	Count     int            `json:"count"`
}

// GraphDocument is the JSON import/export format.
type GraphDocument struct {
	Directed bool   `json:"directed"`
	Weighted bool   `json:"weighted"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}
