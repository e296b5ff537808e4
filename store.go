package ponte

import "context"

// Store defines the interface for state persistence. Implementations
// round-trip a state's identity, layer tag, confidence, metadata mapping,
// and provenance chain exactly; payloads round-trip as text.
type Store interface {
	// SaveState persists a state.
	SaveState(ctx context.Context, state *LayerState) error

	// GetState loads a state by ID.
	GetState(ctx context.Context, id string) (*LayerState, error)

	// GetStatesByLayer loads all states at a layer, ordered by creation time.
	GetStatesByLayer(ctx context.Context, layer Layer) ([]*LayerState, error)

	// Lineage resolves a state's upstream ancestors in causal chain
	// order. Ancestors never saved to the store are skipped.
	Lineage(ctx context.Context, state *LayerState) ([]*LayerState, error)

	// DeleteState removes a state. Deleting an absent ID is not an error.
	DeleteState(ctx context.Context, id string) error

	// Close releases the underlying storage.
	Close() error
}
