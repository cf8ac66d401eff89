package service

import (
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/graphpane/graphpane/internal/kvindex"
	"github.com/graphpane/graphpane/internal/store"
)

// mockPublisher records broadcast events for assertions.
type mockPublisher struct {
	mu     sync.Mutex
	events []string
}

func (m *mockPublisher) BroadcastEvent(eventType string, _ json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, eventType)
}

func (m *mockPublisher) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.events...)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func testStore(t *testing.T, directed, weighted bool) *store.GraphStore {
	t.Helper()

	return store.New(kvindex.New(64), directed, weighted, testLogger())
}
