package ponte

import (
	"fmt"
	"sort"
)

// layerPair keys the registry's lookup table.
type layerPair struct {
	source Layer
	target Layer
}

// Registry maps layer pairs to bridge instances. Built once at startup and
// read-only thereafter, so lookups need no locking.
type Registry struct {
	byPair map[layerPair]Bridge
	byName map[string]Bridge
	sorted []Bridge // descending resonance
}

// NewRegistry builds a registry from the given bridges. Registering two
// bridges for the same (source, target) pair is an error, as is a
// duplicate name.
func NewRegistry(bridges ...Bridge) (*Registry, error) {
	r := &Registry{
		byPair: make(map[layerPair]Bridge, len(bridges)),
		byName: make(map[string]Bridge, len(bridges)),
		sorted: make([]Bridge, 0, len(bridges)),
	}

	for _, b := range bridges {
		pair := layerPair{source: b.SourceLayer(), target: b.TargetLayer()}
		if existing, ok := r.byPair[pair]; ok {
			return nil, fmt.Errorf("bridge %q duplicates layer pair %s -> %s already held by %q",
				b.Name(), pair.source, pair.target, existing.Name())
		}
		if _, ok := r.byName[b.Name()]; ok {
			return nil, fmt.Errorf("bridge name %q already registered", b.Name())
		}
		r.byPair[pair] = b
		r.byName[b.Name()] = b
		r.sorted = append(r.sorted, b)
	}

	sort.SliceStable(r.sorted, func(i, j int) bool {
		return r.sorted[i].Resonance() > r.sorted[j].Resonance()
	})

	return r, nil
}

// DefaultRegistry builds a registry holding the five standard bridges.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		NewCrossDomainIntuitionBridge(),
		NewIntuitionLanguageBridge(),
		NewLanguageCollaborativeBridge(),
		NewCollaborativeExternalBridge(),
		NewIntuitionExternalBridge(),
	)
	if err != nil {
		// The standard set has distinct pairs and names.
		panic(fmt.Sprintf("ponte: default registry construction failed: %v", err))
	}
	return r
}

// Lookup returns the bridge connecting source to target.
func (r *Registry) Lookup(source, target Layer) (Bridge, bool) {
	b, ok := r.byPair[layerPair{source: source, target: target}]
	return b, ok
}

// ByName returns the bridge with the given name.
func (r *Registry) ByName(name string) (Bridge, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Bridges returns all registered bridges ordered by descending resonance,
// the order an orchestrator should prefer when choosing a traversal.
// The returned slice is a copy.
func (r *Registry) Bridges() []Bridge {
	out := make([]Bridge, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// Len returns the number of registered bridges.
func (r *Registry) Len() int {
	return len(r.sorted)
}
