package ponte

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"
)

// Payload is a shared, immutable handle to the opaque content a state
// carries between layers. Derived states hold the same handle rather than
// a copy; the content lives until the last referencing state is dropped.
// The core never inspects or transforms the content.
type Payload struct {
	content any
}

// NewPayload wraps content in a shared handle.
func NewPayload(content any) *Payload {
	return &Payload{content: content}
}

// Content returns the wrapped content.
func (p *Payload) Content() any {
	if p == nil {
		return nil
	}
	return p.content
}

// Text renders the content as a string. String content comes back
// verbatim; anything else gets a best-effort fmt rendering. Used by the
// store, which persists payloads as text.
func (p *Payload) Text() string {
	if p == nil || p.content == nil {
		return ""
	}
	if s, ok := p.content.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", p.content)
}

// Provenance is the ordered, append-only list of ancestor state IDs a
// state was derived from. Order is causal chain order; duplicates are
// legal (a state can re-enter a bridge it already crossed).
// Implements sql.Scanner and driver.Valuer as JSON for persistence.
type Provenance []string

// Value implements driver.Valuer for writing provenance to the database.
func (p Provenance) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, fmt.Errorf("failed to encode provenance: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for reading provenance from the database.
func (p *Provenance) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}

	var b []byte
	switch val := src.(type) {
	case []byte:
		b = val
	case string:
		b = []byte(val)
	default:
		return fmt.Errorf("cannot scan %T into Provenance", src)
	}

	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return fmt.Errorf("failed to decode provenance: %w", err)
	}
	*p = ids
	return nil
}

// LayerState is the confidence-weighted envelope moved between pipeline
// stages. Identity and layer are fixed at construction. Confidence is
// nominally in [0,1] but never clamped: repeated amplification may push it
// past 1, which callers are expected to observe.
//
// # Concurrency
//
// LayerState is safe for concurrent reads. Metadata upserts must not run
// concurrently with each other or with reads. Bridge operations never
// mutate their inputs, so disjoint states flow through bridges from any
// number of goroutines without coordination.
type LayerState struct {
	// ID is the process-unique identity token, assigned at construction.
	ID string

	// Layer is the stage this state belongs to.
	Layer Layer

	// Confidence is the propagated confidence scalar.
	Confidence float64

	// CreatedAt records construction time.
	CreatedAt time.Time

	payload  *Payload
	metadata map[string]string
	upstream Provenance

	mu sync.RWMutex
}

// NewSeedState constructs an initial state for orchestrators to feed into
// a bridge path. All other states are produced by bridge operations.
func NewSeedState(ctx context.Context, layer Layer, payload *Payload, confidence float64) *LayerState {
	s := &LayerState{
		ID:         uuid.New().String(),
		Layer:      layer,
		Confidence: confidence,
		CreatedAt:  time.Now(),
		payload:    payload,
		metadata:   make(map[string]string),
	}

	capitan.Emit(ctx, StateCreated,
		FieldStateID.Field(s.ID),
		FieldLayer.Field(string(layer)),
		FieldConfidence.Field(float32(confidence)),
	)

	return s
}

// restoreState rebuilds a state from its persisted fields. The store is
// the only caller; identity and history come back exactly as saved.
func restoreState(id string, layer Layer, confidence float64, payload *Payload, metadata map[string]string, upstream Provenance, created time.Time) *LayerState {
	if metadata == nil {
		metadata = make(map[string]string)
	}
	return &LayerState{
		ID:         id,
		Layer:      layer,
		Confidence: confidence,
		CreatedAt:  created,
		payload:    payload,
		metadata:   metadata,
		upstream:   upstream,
	}
}

// Payload returns the shared payload handle.
func (s *LayerState) Payload() *Payload {
	return s.payload
}

// SetMetadata upserts a metadata entry. There is no delete: metadata only
// accumulates over a state's lifetime.
func (s *LayerState) SetMetadata(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadata[key] = value
}

// MetadataValue returns a single metadata entry.
func (s *LayerState) MetadataValue(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.metadata[key]
	return v, ok
}

// Metadata returns a copy of the metadata mapping.
func (s *LayerState) Metadata() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.metadata))
	for k, v := range s.metadata {
		out[k] = v
	}
	return out
}

// Upstream returns a copy of the provenance chain, oldest ancestor first.
func (s *LayerState) Upstream() Provenance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(Provenance, len(s.upstream))
	copy(out, s.upstream)
	return out
}

// Clone returns an independent copy sharing the same payload handle.
// Required by the parallel pipz connectors, which hand each branch an
// isolated state.
func (s *LayerState) Clone() *LayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta := make(map[string]string, len(s.metadata))
	for k, v := range s.metadata {
		meta[k] = v
	}
	upstream := make(Provenance, len(s.upstream))
	copy(upstream, s.upstream)

	return &LayerState{
		ID:         s.ID,
		Layer:      s.Layer,
		Confidence: s.Confidence,
		CreatedAt:  s.CreatedAt,
		payload:    s.payload,
		metadata:   meta,
		upstream:   upstream,
	}
}

// derive builds the new state a bridge operation returns: fresh identity
// at the given layer, shared payload, inherited metadata with the bridge's
// entries upserted, and s.ID appended to the inherited provenance chain.
func (s *LayerState) derive(layer Layer, confidence float64, meta map[string]string) *LayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merged := make(map[string]string, len(s.metadata)+len(meta))
	for k, v := range s.metadata {
		merged[k] = v
	}
	for k, v := range meta {
		merged[k] = v
	}

	upstream := make(Provenance, len(s.upstream), len(s.upstream)+1)
	copy(upstream, s.upstream)
	upstream = append(upstream, s.ID)

	return &LayerState{
		ID:         uuid.New().String(),
		Layer:      layer,
		Confidence: confidence,
		CreatedAt:  time.Now(),
		payload:    s.payload,
		metadata:   merged,
		upstream:   upstream,
	}
}

// withConfidence returns a copy with the confidence replaced and every
// other field preserved, identity included. Amplification reports its
// boosted endpoints this way.
func (s *LayerState) withConfidence(confidence float64) *LayerState {
	out := s.Clone()
	out.Confidence = confidence
	return out
}
