package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/graphpane/graphpane/internal/models"
	"github.com/graphpane/graphpane/internal/ws"
)

func TestCreateEdgeDefaultsWeight(t *testing.T) {
	t.Parallel()

	st := testStore(t, true, true)
	nodes := NewNodeService(st, nil, testLogger())
	edges := NewEdgeService(st, nil, testLogger())

	for _, id := range []string{"a", "b"} {
		if _, err := nodes.CreateNode(&models.CreateNodeRequest{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	edge, err := edges.CreateEdge(&models.CreateEdgeRequest{From: "a", To: "b"})
	if err != nil {
		t.Fatal(err)
	}

	if edge.Weight != models.DefaultWeight {
		t.Errorf("expected default weight, got %v", edge.Weight)
	}
}

func TestCreateEdgeRequiresEndpoints(t *testing.T) {
	t.Parallel()

	st := testStore(t, true, false)
	edges := NewEdgeService(st, nil, testLogger())

	_, err := edges.CreateEdge(&models.CreateEdgeRequest{From: "a", To: "b"})
	if !errors.Is(err, models.ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestCreateEdgeRejectsNegativeWeight(t *testing.T) {
	t.Parallel()

	st := testStore(t, true, true)
	edges := NewEdgeService(st, nil, testLogger())

	w := -2.5
	_, err := edges.CreateEdge(&models.CreateEdgeRequest{From: "a", To: "b", Weight: &w})
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEdgeLifecycleEvents(t *testing.T) {
	t.Parallel()

	st := testStore(t, true, false)
	pub := &mockPublisher{}
	nodes := NewNodeService(st, nil, testLogger())
	edges := NewEdgeService(st, pub, testLogger())

	for _, id := range []string{"a", "b"} {
		if _, err := nodes.CreateNode(&models.CreateNodeRequest{ID: id}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := edges.CreateEdge(&models.CreateEdgeRequest{From: "a", To: "b"}); err != nil {
		t.Fatal(err)
	}

	if err := edges.DeleteEdge("a", "b"); err != nil {
		t.Fatal(err)
	}

	want := []string{ws.EventEdgeCreated, ws.EventEdgeDeleted}
	if got := pub.recorded(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected events %v, got %v", want, got)
	}

	if len(edges.AllEdges()) != 0 {
		t.Error("expected empty edge set after delete")
	}
}
