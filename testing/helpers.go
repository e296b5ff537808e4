// Package pontetest provides test utilities for ponte.
package pontetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/zoobzio/ponte"
)

// MockStore implements ponte.Store for testing without a database.
type MockStore struct {
	states map[string]*ponte.LayerState
	mu     sync.RWMutex
}

// NewMockStore creates a new in-memory mock for ponte.Store.
func NewMockStore() *MockStore {
	return &MockStore{
		states: make(map[string]*ponte.LayerState),
	}
}

// SaveState persists a state.
func (m *MockStore) SaveState(_ context.Context, state *ponte.LayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state.ID] = state.Clone()
	return nil
}

// GetState loads a state by ID.
func (m *MockStore) GetState(_ context.Context, id string) (*ponte.LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[id]
	if !ok {
		return nil, fmt.Errorf("state not found: %s", id)
	}
	return state.Clone(), nil
}

// GetStatesByLayer loads all states at a layer, ordered by creation time.
func (m *MockStore) GetStatesByLayer(_ context.Context, layer ponte.Layer) ([]*ponte.LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*ponte.LayerState
	for _, state := range m.states {
		if state.Layer == layer {
			out = append(out, state.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Lineage resolves a state's upstream ancestors in causal chain order,
// skipping ancestors never saved.
func (m *MockStore) Lineage(_ context.Context, state *ponte.LayerState) ([]*ponte.LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var lineage []*ponte.LayerState
	for _, id := range state.Upstream() {
		if ancestor, ok := m.states[id]; ok {
			lineage = append(lineage, ancestor.Clone())
		}
	}
	return lineage, nil
}

// DeleteState removes a state.
func (m *MockStore) DeleteState(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

// Close implements ponte.Store.
func (m *MockStore) Close() error {
	return nil
}

// Len returns the number of stored states.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}

// FixedAnalyzer implements ponte.Analyzer, returning the same decision for
// every embedding. Useful for orchestrator tests that exercise routing
// without a real scorer.
type FixedAnalyzer struct {
	Decision ponte.RoutingDecision
	Err      error
}

// Analyze implements ponte.Analyzer.
func (a *FixedAnalyzer) Analyze(_ context.Context, _ ponte.Vector) (ponte.RoutingDecision, error) {
	if a.Err != nil {
		return ponte.RoutingDecision{}, a.Err
	}
	return a.Decision, nil
}

// NewTestState creates and stores a seed state for testing.
func NewTestState(t *testing.T, store *MockStore, layer ponte.Layer, confidence float64) *ponte.LayerState {
	t.Helper()

	state := ponte.NewSeedState(context.Background(), layer, ponte.NewPayload("test payload"), confidence)
	if err := store.SaveState(context.Background(), state); err != nil {
		t.Fatalf("failed to store test state: %v", err)
	}
	return state
}

// RequireMetadata fails the test when the state lacks the expected entry.
func RequireMetadata(t *testing.T, state *ponte.LayerState, key, expected string) {
	t.Helper()

	actual, ok := state.MetadataValue(key)
	if !ok {
		t.Fatalf("expected metadata %q to be present", key)
	}
	if actual != expected {
		t.Fatalf("metadata %q: expected %q, got %q", key, expected, actual)
	}
}

// RequireLayer fails the test when the state sits at a different layer.
func RequireLayer(t *testing.T, state *ponte.LayerState, expected ponte.Layer) {
	t.Helper()

	if state.Layer != expected {
		t.Fatalf("expected layer %s, got %s", expected, state.Layer)
	}
}

var _ ponte.Store = (*MockStore)(nil)
var _ ponte.Analyzer = (*FixedAnalyzer)(nil)
