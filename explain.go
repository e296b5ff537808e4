package ponte

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/zyn"
)

// defaultExplainStyle guides the narration synapse when no style is given.
const defaultExplainStyle = "Narrate how this pipeline state was derived: which stages it crossed, " +
	"how its confidence evolved, and what each refinement contributed. Plain prose, past tense."

// Explain produces a human-readable account of a state's derivation. It
// resolves the state's provenance chain from a Store, renders the chain as
// text, and fires a transform synapse to narrate it. Strictly an
// observability surface: the numeric pipeline never depends on it.
type Explain struct {
	style       string
	provider    Provider
	temperature float32
}

// NewExplain creates a narration primitive with the given style prompt.
// An empty style falls back to the package default.
func NewExplain(style string) *Explain {
	if style == "" {
		style = defaultExplainStyle
	}
	return &Explain{style: style}
}

// WithProvider sets the provider for this primitive, taking precedence
// over context and global providers.
func (e *Explain) WithProvider(p Provider) *Explain {
	e.provider = p
	return e
}

// WithTemperature sets the synapse temperature. Zero means
// DefaultExplainTemperature.
func (e *Explain) WithTemperature(temp float32) *Explain {
	e.temperature = temp
	return e
}

// Narrate resolves the state's ancestors from the store and returns a
// narrated account of the derivation. Ancestors missing from the store are
// skipped; the chain renders in causal order either way.
func (e *Explain) Narrate(ctx context.Context, store Store, state *LayerState) (string, error) {
	provider, err := ResolveProvider(ctx, e.provider)
	if err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}

	lineage, err := store.Lineage(ctx, state)
	if err != nil {
		return "", fmt.Errorf("explain: failed to resolve lineage: %w", err)
	}

	rendered := renderDerivation(state, lineage)

	capitan.Emit(ctx, ExplainStarted,
		FieldStateID.Field(state.ID),
		FieldLayer.Field(string(state.Layer)),
		FieldAncestorCount.Field(len(lineage)),
		FieldContextSize.Field(len(rendered)),
	)

	transformSynapse, err := zyn.Transform(e.style, provider)
	if err != nil {
		return "", fmt.Errorf("explain: failed to create transform synapse: %w", err)
	}

	temp := e.temperature
	if temp == 0 {
		temp = DefaultExplainTemperature
	}

	narration, err := transformSynapse.FireWithInput(ctx, zyn.NewSession(), zyn.TransformInput{
		Text:        rendered,
		Context:     fmt.Sprintf("Derivation chain for state %s, %d ancestors resolved.", state.ID, len(lineage)),
		Style:       e.style,
		Temperature: temp,
	})
	if err != nil {
		return "", fmt.Errorf("explain: narration failed: %w", err)
	}

	capitan.Emit(ctx, ExplainCompleted,
		FieldStateID.Field(state.ID),
		FieldContextSize.Field(len(narration)),
	)

	return narration, nil
}

// renderDerivation formats a state and its resolved ancestors as text
// context for the narration synapse, oldest ancestor first.
func renderDerivation(state *LayerState, lineage []*LayerState) string {
	var builder strings.Builder

	builder.WriteString("=== DERIVATION CHAIN ===\n\n")
	for i, ancestor := range lineage {
		builder.WriteString(fmt.Sprintf("%d. state %s at layer %s, confidence %.4f\n",
			i+1, ancestor.ID, ancestor.Layer, ancestor.Confidence))
		writeMetadata(&builder, ancestor.Metadata())
	}

	builder.WriteString(fmt.Sprintf("\n=== CURRENT STATE ===\n\nstate %s at layer %s, confidence %.4f\n",
		state.ID, state.Layer, state.Confidence))
	writeMetadata(&builder, state.Metadata())
	if text := state.Payload().Text(); text != "" {
		builder.WriteString(fmt.Sprintf("payload: %s\n", text))
	}

	return builder.String()
}

// writeMetadata renders metadata entries in key order for stable output.
func writeMetadata(builder *strings.Builder, meta map[string]string) {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("   %s = %s\n", k, meta[k]))
	}
}
