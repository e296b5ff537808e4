package ponte

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// mockStore implements Store for testing without a database.
type mockStore struct {
	states map[string]*LayerState
	mu     sync.RWMutex
}

func newMockStore() *mockStore {
	return &mockStore{
		states: make(map[string]*LayerState),
	}
}

func (m *mockStore) SaveState(_ context.Context, state *LayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[state.ID] = state.Clone()
	return nil
}

func (m *mockStore) GetState(_ context.Context, id string) (*LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[id]
	if !ok {
		return nil, fmt.Errorf("state not found: %s", id)
	}
	return state.Clone(), nil
}

func (m *mockStore) GetStatesByLayer(_ context.Context, layer Layer) ([]*LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*LayerState
	for _, state := range m.states {
		if state.Layer == layer {
			out = append(out, state.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStore) Lineage(_ context.Context, state *LayerState) ([]*LayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var lineage []*LayerState
	for _, id := range state.Upstream() {
		if ancestor, ok := m.states[id]; ok {
			lineage = append(lineage, ancestor.Clone())
		}
	}
	return lineage, nil
}

func (m *mockStore) DeleteState(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, id)
	return nil
}

func (m *mockStore) Close() error {
	return nil
}

// newTestState creates a seed state at the given layer for testing.
func newTestState(layer Layer, confidence float64) *LayerState {
	return NewSeedState(context.Background(), layer, NewPayload("test payload"), confidence)
}

var _ Store = (*mockStore)(nil)
