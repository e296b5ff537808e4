package ponte

import (
	"context"
	"errors"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Bridge is the bidirectional contract connecting exactly two layers.
// A bridge is a value fixed at construction: all behavior derives from its
// static constants, so every operation is a pure function of its inputs
// and safe to invoke from any number of goroutines.
type Bridge interface {
	// Name returns the stable identifier used for logging and registry keys.
	Name() string

	// SourceLayer returns the layer forward inputs must carry.
	SourceLayer() Layer

	// TargetLayer returns the layer backward inputs must carry.
	TargetLayer() Layer

	// Resonance returns the fixed baseline coupling strength in (0, 1].
	// Orchestrators use it to prioritize which bridge to traverse first.
	Resonance() float64

	// Forward propagates a source-layer state to the target layer,
	// attenuating confidence by the bridge's forward factor. Fails with
	// InvalidInput when input.Layer is not the source layer.
	Forward(ctx context.Context, input *LayerState) (*LayerState, error)

	// Backward refines a target-layer state back to the source layer,
	// applying the backward factor and any conditional metadata boost.
	// Fails with InvalidInput when feedback.Layer is not the target layer.
	Backward(ctx context.Context, feedback *LayerState) (*LayerState, error)

	// Amplify iteratively cross-reinforces two already-linked states
	// straddling this bridge. Inputs are trusted; Amplify never fails.
	Amplify(ctx context.Context, up, down *LayerState, maxIterations int) AmplificationResult
}

// ErrInvalidInput matches any bridge layer-validation failure via errors.Is.
var ErrInvalidInput = errors.New("invalid input layer")

// InvalidInputError reports a state presented to the wrong end of a
// bridge. It is the only error this subsystem raises: validation happens
// before any construction, so a failed call leaves no side effects.
type InvalidInputError struct {
	Bridge string
	Op     string // "forward" or "backward"
	Want   Layer
	Got    Layer
}

// Error implements the error interface, naming both layers.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s %s: invalid input layer: want %s, got %s",
		e.Bridge, e.Op, e.Want, e.Got)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// bridgeParams is the full parameter set a concrete bridge supplies.
// Adding a new stage pair is a new parameter set, never new control flow.
type bridgeParams struct {
	name   string
	source Layer
	target Layer

	resonance      float64
	forwardFactor  float64 // confidence attenuation on forward, in (0, 1)
	backwardFactor float64 // typically >= forwardFactor: refinement carries more signal

	// Conditional backward boost, keyed on a metadata flag being present
	// on the feedback state. boostFlag == "" disables it.
	boostFlag   string
	boostFactor float64

	// Amplification constants.
	amplifyGain    float64 // per-round coefficient k
	amplifyCeiling int     // hard cap on rounds regardless of maxIterations
	amplifyEpsilon float64 // early exit once boost < 1+epsilon

	// Metadata entries each derivation adds.
	forwardMeta  map[string]string
	backwardMeta map[string]string
}

// bridgeCore carries the shared control flow for every concrete bridge.
// Concrete bridge types embed it and contribute parameters only.
type bridgeCore struct {
	params bridgeParams
}

// Name implements Bridge.
func (b *bridgeCore) Name() string {
	return b.params.name
}

// SourceLayer implements Bridge.
func (b *bridgeCore) SourceLayer() Layer {
	return b.params.source
}

// TargetLayer implements Bridge.
func (b *bridgeCore) TargetLayer() Layer {
	return b.params.target
}

// Resonance implements Bridge.
func (b *bridgeCore) Resonance() float64 {
	return b.params.resonance
}

// Forward implements Bridge.
func (b *bridgeCore) Forward(ctx context.Context, input *LayerState) (*LayerState, error) {
	if input.Layer != b.params.source {
		return nil, b.reject(ctx, "forward", b.params.source, input)
	}

	out := input.derive(b.params.target, input.Confidence*b.params.forwardFactor, b.params.forwardMeta)

	capitan.Emit(ctx, ForwardCompleted,
		FieldBridge.Field(b.params.name),
		FieldStateID.Field(input.ID),
		FieldDerivedID.Field(out.ID),
		FieldLayer.Field(string(out.Layer)),
		FieldConfidence.Field(float32(out.Confidence)),
	)

	return out, nil
}

// Backward implements Bridge.
func (b *bridgeCore) Backward(ctx context.Context, feedback *LayerState) (*LayerState, error) {
	if feedback.Layer != b.params.target {
		return nil, b.reject(ctx, "backward", b.params.target, feedback)
	}

	boost := 1.0
	if b.params.boostFlag != "" {
		if _, ok := feedback.MetadataValue(b.params.boostFlag); ok {
			boost = b.params.boostFactor
		}
	}

	out := feedback.derive(b.params.source, feedback.Confidence*b.params.backwardFactor*boost, b.params.backwardMeta)

	capitan.Emit(ctx, BackwardCompleted,
		FieldBridge.Field(b.params.name),
		FieldStateID.Field(feedback.ID),
		FieldDerivedID.Field(out.ID),
		FieldLayer.Field(string(out.Layer)),
		FieldConfidence.Field(float32(out.Confidence)),
		FieldBoost.Field(float32(boost)),
	)

	return out, nil
}

// reject emits the rejection event and builds the validation error.
// Called before any state construction, so failure has no side effects.
func (b *bridgeCore) reject(ctx context.Context, op string, want Layer, got *LayerState) error {
	err := &InvalidInputError{
		Bridge: b.params.name,
		Op:     op,
		Want:   want,
		Got:    got.Layer,
	}

	capitan.Error(ctx, BridgeRejected,
		FieldBridge.Field(b.params.name),
		FieldOp.Field(op),
		FieldStateID.Field(got.ID),
		FieldWantLayer.Field(string(want)),
		FieldGotLayer.Field(string(got.Layer)),
		FieldError.Field(err),
	)

	return err
}
