package ponte

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/astql/postgres"
	"github.com/zoobzio/soy"
)

// stateRecord is the persisted shape of a LayerState. Metadata and
// provenance land in jsonb columns; the opaque payload is persisted as its
// text rendering.
type stateRecord struct {
	ID         string            `db:"id" type:"uuid" constraints:"primarykey"`
	Layer      string            `db:"layer" type:"text" constraints:"notnull"`
	Confidence float64           `db:"confidence" type:"double precision" constraints:"notnull"`
	Payload    string            `db:"payload" type:"text"`
	Metadata   map[string]string `db:"metadata" type:"jsonb" default:"'{}'"`
	Upstream   Provenance        `db:"upstream" type:"jsonb" default:"'[]'"`
	Created    time.Time         `db:"created" type:"timestamp" constraints:"notnull"`
}

// SoyStore implements Store using soy for persistence.
type SoyStore struct {
	states *soy.Soy[stateRecord]
	db     *sqlx.DB
}

// NewSoyStore creates a new soy-backed Store implementation.
func NewSoyStore(db *sqlx.DB) (*SoyStore, error) {
	renderer := postgres.New()

	states, err := soy.New[stateRecord](db, "layer_states", renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize layer_states table: %w", err)
	}

	return &SoyStore{
		states: states,
		db:     db,
	}, nil
}

// SaveState persists a state.
func (s *SoyStore) SaveState(ctx context.Context, state *LayerState) error {
	record := stateToRecord(state)
	if _, err := s.states.Insert().Exec(ctx, record); err != nil {
		return fmt.Errorf("failed to insert state: %w", err)
	}
	return nil
}

// GetState loads a state by ID.
func (s *SoyStore) GetState(ctx context.Context, id string) (*LayerState, error) {
	record, err := s.states.Select().
		Where("id", "=", "id").
		Exec(ctx, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return recordToState(record)
}

// GetStatesByLayer loads all states at a layer, ordered by creation time.
func (s *SoyStore) GetStatesByLayer(ctx context.Context, layer Layer) ([]*LayerState, error) {
	records, err := s.states.Query().
		Where("layer", "=", "layer").
		OrderBy("created", "asc").
		Exec(ctx, map[string]any{"layer": string(layer)})
	if err != nil {
		return nil, fmt.Errorf("failed to get states by layer: %w", err)
	}

	states := make([]*LayerState, 0, len(records))
	for _, record := range records {
		state, err := recordToState(record)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

// Lineage resolves a state's upstream ancestors in causal chain order.
// Ancestors never saved to the store are skipped.
func (s *SoyStore) Lineage(ctx context.Context, state *LayerState) ([]*LayerState, error) {
	upstream := state.Upstream()
	if len(upstream) == 0 {
		return nil, nil
	}

	records, err := s.states.Query().
		Where("id", "IN", "ids").
		Exec(ctx, map[string]any{"ids": []string(upstream)})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve lineage: %w", err)
	}

	// Re-order to match the provenance chain; the query gives no order
	// guarantee and duplicates in the chain are legal.
	byID := make(map[string]*stateRecord, len(records))
	for _, record := range records {
		byID[record.ID] = record
	}

	lineage := make([]*LayerState, 0, len(upstream))
	for _, id := range upstream {
		record, ok := byID[id]
		if !ok {
			continue
		}
		state, err := recordToState(record)
		if err != nil {
			return nil, err
		}
		lineage = append(lineage, state)
	}
	return lineage, nil
}

// DeleteState removes a state.
func (s *SoyStore) DeleteState(ctx context.Context, id string) error {
	_, err := s.states.Remove().
		Where("id", "=", "id").
		Exec(ctx, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SoyStore) Close() error {
	return s.db.Close()
}

// stateToRecord flattens a state into its persisted shape.
func stateToRecord(state *LayerState) *stateRecord {
	return &stateRecord{
		ID:         state.ID,
		Layer:      string(state.Layer),
		Confidence: state.Confidence,
		Payload:    state.Payload().Text(),
		Metadata:   state.Metadata(),
		Upstream:   state.Upstream(),
		Created:    state.CreatedAt,
	}
}

// recordToState rebuilds a state from its persisted shape. Unknown layer
// tags are rejected rather than silently admitted into the closed set.
func recordToState(record *stateRecord) (*LayerState, error) {
	layer, err := ParseLayer(record.Layer)
	if err != nil {
		return nil, fmt.Errorf("stored state %s: %w", record.ID, err)
	}
	return restoreState(
		record.ID,
		layer,
		record.Confidence,
		NewPayload(record.Payload),
		record.Metadata,
		record.Upstream,
		record.Created,
	), nil
}
