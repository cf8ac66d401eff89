package store_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/kvindex"
	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/store"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

func newStore(t *testing.T, directed, weighted bool) *store.GraphStore {
	t.Helper()

	return store.New(kvindex.New(64), directed, weighted, testLogger())
}

func mustAddNode(t *testing.T, s *store.GraphStore, id string) {
	t.Helper()

	if err := s.AddNode(id, nil); err != nil {
		t.Fatalf("AddNode(%s): %v", id, err)
	}
}

func mustAddEdge(t *testing.T, s *store.GraphStore, from, to string, weight float64) {
	t.Helper()

	if err := s.AddEdge(from, to, weight, ""); err != nil {
		t.Fatalf("AddEdge(%s, %s): %v", from, to, err)
	}
}

func TestNodeRoundTrip(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)

	data := map[string]any{"label": "Start", "rank": 3.0}
	if err := s.AddNode("A", data); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	n, err := s.GetNode("A")
	if err != nil {
		t.Fatalf("GetNode: %v", err)
	}

	if n.ID != "A" || n.Data["label"] != "Start" || n.Data["rank"] != 3.0 {
		t.Errorf("round trip mismatch: %+v", n)
	}
}

func TestAddNodeDuplicate(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	mustAddNode(t, s, "A")

	if err := s.AddNode("A", nil); !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestUpdateNodeReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	if err := s.AddNode("A", map[string]any{"old": true}); err != nil {
		t.Fatal(err)
	}

	if err := s.UpdateNode("A", map[string]any{"new": true}); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}

	n, _ := s.GetNode("A")
	if _, ok := n.Data["old"]; ok {
		t.Error("expected old payload gone after wholesale update")
	}

	if err := s.UpdateNode("missing", nil); !errors.Is(err, models.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestAddEdgeValidations(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, true)
	mustAddNode(t, s, "A")
	mustAddNode(t, s, "B")

	if err := s.AddEdge("A", "missing", 1, ""); !errors.Is(err, models.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}

	if err := s.AddEdge("A", "B", -2, ""); !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative weight, got %v", err)
	}

	mustAddEdge(t, s, "A", "B", 1)

	if err := s.AddEdge("A", "B", 2, ""); !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey for re-add, got %v", err)
	}
}

func TestUndirectedEdgeSymmetry(t *testing.T) {
	t.Parallel()

	s := newStore(t, false, true)
	mustAddNode(t, s, "A")
	mustAddNode(t, s, "B")
	mustAddEdge(t, s, "A", "B", 2.5)

	if !s.EdgeExists("B", "A") {
		t.Error("expected reverse direction to exist on undirected graph")
	}

	nb, err := s.Neighbors("B")
	if err != nil {
		t.Fatal(err)
	}

	if len(nb) != 1 || nb[0].To != "A" || nb[0].Weight != 2.5 {
		t.Errorf("expected reverse adjacency entry with same weight, got %+v", nb)
	}

	if got := s.Stats().Edges; got != 1 {
		t.Errorf("undirected edge must count once, got %d", got)
	}

	if err := s.DeleteEdge("B", "A"); err != nil {
		t.Fatalf("DeleteEdge reverse: %v", err)
	}

	if s.EdgeExists("A", "B") || s.EdgeExists("B", "A") {
		t.Error("expected both directions removed")
	}

	na, _ := s.Neighbors("A")
	if len(na) != 0 {
		t.Errorf("expected A adjacency empty, got %+v", na)
	}
}

func TestDeleteNodeCascades(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, true)
	for _, id := range []string{"A", "B", "C", "D"} {
		mustAddNode(t, s, id)
	}
	mustAddEdge(t, s, "A", "B", 1)
	mustAddEdge(t, s, "B", "C", 1)
	mustAddEdge(t, s, "A", "C", 4)
	mustAddEdge(t, s, "D", "B", 1)

	if err := s.DeleteNode("B"); err != nil {
		t.Fatalf("DeleteNode: %v", err)
	}

	// No edge or adjacency entry anywhere may still reference B.
	for _, e := range s.AllEdges() {
		if e.From == "B" || e.To == "B" {
			t.Errorf("edge %s->%s still references deleted node", e.From, e.To)
		}
	}

	for _, id := range s.AllNodes() {
		nb, err := s.Neighbors(id)
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range nb {
			if n.To == "B" {
				t.Errorf("adjacency of %s still references deleted node", id)
			}
		}
	}

	stats := s.Stats()
	if stats.Nodes != 3 {
		t.Errorf("expected 3 nodes, got %d", stats.Nodes)
	}

	if stats.Edges != 1 {
		t.Errorf("expected only A->C to remain, got %d edges", stats.Edges)
	}

	edges := s.AllEdges()
	if len(edges) != 1 || edges[0].From != "A" || edges[0].To != "C" || edges[0].Weight != 4 {
		t.Errorf("expected remaining edge A->C(4), got %+v", edges)
	}
}

func TestDeleteNodeUndirectedCascades(t *testing.T) {
	t.Parallel()

	s := newStore(t, false, false)
	for _, id := range []string{"hub", "x", "y"} {
		mustAddNode(t, s, id)
	}
	mustAddEdge(t, s, "hub", "x", 1)
	mustAddEdge(t, s, "y", "hub", 1)

	if err := s.DeleteNode("hub"); err != nil {
		t.Fatal(err)
	}

	stats := s.Stats()
	if stats.Nodes != 2 || stats.Edges != 0 {
		t.Errorf("expected 2 nodes / 0 edges, got %d/%d", stats.Nodes, stats.Edges)
	}

	for _, id := range []string{"x", "y"} {
		nb, _ := s.Neighbors(id)
		if len(nb) != 0 {
			t.Errorf("adjacency of %s not cleaned: %+v", id, nb)
		}
	}
}

func TestAllNodesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	want := []string{"zeta", "alpha", "mid"}
	for _, id := range want {
		mustAddNode(t, s, id)
	}

	got := s.AllNodes()
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNeighborsInsertionOrderStable(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	for _, id := range []string{"A", "c", "a", "b"} {
		mustAddNode(t, s, id)
	}
	mustAddEdge(t, s, "A", "c", 1)
	mustAddEdge(t, s, "A", "a", 1)
	mustAddEdge(t, s, "A", "b", 1)

	first, _ := s.Neighbors("A")
	second, _ := s.Neighbors("A")

	want := []string{"c", "a", "b"}
	for i, n := range first {
		if n.To != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], n.To)
		}

		if second[i].To != first[i].To {
			t.Error("neighbor order not stable across calls")
		}
	}
}

func TestRejectsColonID(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	if err := s.AddNode("a:b", nil); !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDegree(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	for _, id := range []string{"A", "B", "C"} {
		mustAddNode(t, s, id)
	}
	mustAddEdge(t, s, "A", "B", 1)
	mustAddEdge(t, s, "C", "B", 1)
	mustAddEdge(t, s, "B", "A", 1)

	d, err := s.Degree("B")
	if err != nil {
		t.Fatal(err)
	}

	if d.In != 2 || d.Out != 1 || d.Total != 3 {
		t.Errorf("expected in=2 out=1 total=3, got %+v", d)
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, true)
	if err := s.AddNode("A", map[string]any{"label": "Start"}); err != nil {
		t.Fatal(err)
	}
	mustAddNode(t, s, "B")
	mustAddEdge(t, s, "A", "B", 2.5)

	doc, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	other := newStore(t, true, true)
	if err := other.ImportJSON(doc); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	stats := other.Stats()
	if stats.Nodes != 2 || stats.Edges != 1 || !stats.Directed || !stats.Weighted {
		t.Errorf("import mismatch: %+v", stats)
	}

	n, err := other.GetNode("A")
	if err != nil || n.Data["label"] != "Start" {
		t.Errorf("node payload lost on import: %+v, %v", n, err)
	}

	e, err := other.GetEdge("A", "B")
	if err != nil || e.Weight != 2.5 {
		t.Errorf("edge lost on import: %+v, %v", e, err)
	}
}

func TestImportJSONRejectsUnknownEndpoint(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	mustAddNode(t, s, "keep")

	err := s.ImportJSON(&models.GraphDocument{
		Directed: true,
		Nodes:    []models.Node{{ID: "x"}},
		Edges:    []models.Edge{{From: "x", To: "ghost", Weight: 1}},
	})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// A rejected import must leave the previous graph untouched.
	if _, err := s.GetNode("keep"); err != nil {
		t.Errorf("prior graph lost after rejected import: %v", err)
	}

	if stats := s.Stats(); stats.Nodes != 1 || stats.Edges != 0 {
		t.Errorf("expected 1 node / 0 edges after rejected import, got %+v", stats)
	}
}

func TestImportJSONRejectsDuplicates(t *testing.T) {
	t.Parallel()

	s := newStore(t, false, false)

	err := s.ImportJSON(&models.GraphDocument{
		Nodes: []models.Node{{ID: "a"}, {ID: "a"}},
	})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("duplicate node: expected ErrInvalidArgument, got %v", err)
	}

	// On an undirected graph the reverse pair is the same logical edge.
	err = s.ImportJSON(&models.GraphDocument{
		Nodes: []models.Node{{ID: "a"}, {ID: "b"}},
		Edges: []models.Edge{
			{From: "a", To: "b", Weight: 1},
			{From: "b", To: "a", Weight: 1},
		},
	})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("duplicate edge: expected ErrInvalidArgument, got %v", err)
	}
}

func TestImportJSONRejectsFlagMismatch(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, true)

	err := s.ImportJSON(&models.GraphDocument{
		Directed: false,
		Weighted: true,
		Nodes:    []models.Node{{ID: "a"}},
		Edges:    []models.Edge{},
	})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestImportAdjacency(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, true)

	text := "# comment\nA -> B(1.5), C\nB -> C(2)\nD ->\n"
	if err := s.ImportAdjacency(text); err != nil {
		t.Fatalf("ImportAdjacency: %v", err)
	}

	stats := s.Stats()
	if stats.Nodes != 4 || stats.Edges != 3 {
		t.Errorf("expected 4 nodes / 3 edges, got %d/%d", stats.Nodes, stats.Edges)
	}

	e, err := s.GetEdge("A", "B")
	if err != nil || e.Weight != 1.5 {
		t.Errorf("expected A->B(1.5), got %+v, %v", e, err)
	}

	// Unweighted destination defaults to weight 1.
	e, err = s.GetEdge("A", "C")
	if err != nil || e.Weight != models.DefaultWeight {
		t.Errorf("expected A->C(1), got %+v, %v", e, err)
	}
}

func TestExportImportAdjacencyRoundTripUndirected(t *testing.T) {
	t.Parallel()

	// An undirected graph stores both directions of every edge, so the
	// export lists each one twice; its own output must still re-import.
	s := newStore(t, false, true)
	mustAddNode(t, s, "A")
	mustAddNode(t, s, "B")
	mustAddNode(t, s, "C")
	mustAddEdge(t, s, "A", "B", 2.5)
	mustAddEdge(t, s, "B", "C", 1)

	text := s.ExportAdjacency()

	other := newStore(t, false, true)
	if err := other.ImportAdjacency(text); err != nil {
		t.Fatalf("ImportAdjacency of own export: %v", err)
	}

	stats := other.Stats()
	if stats.Nodes != 3 || stats.Edges != 2 {
		t.Errorf("expected 3 nodes / 2 edges, got %d/%d", stats.Nodes, stats.Edges)
	}

	for _, pair := range [][2]string{{"A", "B"}, {"B", "A"}} {
		e, err := other.GetEdge(pair[0], pair[1])
		if err != nil || e.Weight != 2.5 {
			t.Errorf("expected %s-%s(2.5), got %+v, %v", pair[0], pair[1], e, err)
		}
	}
}

func TestImportAdjacencyRejectsBadTextIntact(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	mustAddNode(t, s, "keep")

	err := s.ImportAdjacency("A -> B\nno arrow here\n")
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// A rejected import must leave the previous graph untouched.
	if _, err := s.GetNode("keep"); err != nil {
		t.Errorf("prior graph lost after rejected import: %v", err)
	}

	if stats := s.Stats(); stats.Nodes != 1 {
		t.Errorf("expected 1 node after rejected import, got %+v", stats)
	}
}

func TestViewConsistentSnapshot(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	mustAddNode(t, s, "A")
	mustAddNode(t, s, "B")
	mustAddEdge(t, s, "A", "B", 1)

	err := s.View(func(v *store.TxView) error {
		if !v.NodeExists("A") {
			t.Error("expected A visible in view")
		}

		nb := v.Neighbors("A")
		if len(nb) != 1 || nb[0].To != "B" {
			t.Errorf("unexpected neighbors: %+v", nb)
		}

		edges := v.EdgesAmong([]string{"A", "B"})
		if len(edges) != 1 {
			t.Errorf("expected 1 edge among {A,B}, got %d", len(edges))
		}

		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestClearResetsCounters(t *testing.T) {
	t.Parallel()

	s := newStore(t, true, false)
	mustAddNode(t, s, "A")
	s.Clear()

	stats := s.Stats()
	if stats.Nodes != 0 || stats.Edges != 0 {
		t.Errorf("expected zeroed counters, got %+v", stats)
	}

	if s.NodeExists("A") {
		t.Error("expected node gone after clear")
	}
}
