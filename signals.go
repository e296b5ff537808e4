package ponte

import "github.com/zoobzio/capitan"

// Signal definitions for bridge pipeline events.
// Signals follow the pattern: ponte.<entity>.<event>.
var (
	// State lifecycle signals.
	StateCreated = capitan.NewSignal(
		"ponte.state.created",
		"New seed state constructed at a pipeline layer",
	)

	// Bridge traversal signals.
	ForwardCompleted = capitan.NewSignal(
		"ponte.bridge.forward.completed",
		"Bridge propagated a state forward to its target layer",
	)
	BackwardCompleted = capitan.NewSignal(
		"ponte.bridge.backward.completed",
		"Bridge refined feedback back to its source layer",
	)
	BridgeRejected = capitan.NewSignal(
		"ponte.bridge.rejected",
		"Bridge rejected an input whose layer did not match",
	)

	// Amplification signals.
	AmplifyIteration = capitan.NewSignal(
		"ponte.amplify.iteration",
		"One mutual-reinforcement round applied to a linked state pair",
	)
	AmplifyCompleted = capitan.NewSignal(
		"ponte.amplify.completed",
		"Amplification loop finished for a linked state pair",
	)

	// Routing signals.
	AnalyzeRouted = capitan.NewSignal(
		"ponte.analyze.routed",
		"Analyzer chose a routing path for an embedding",
	)

	// Narration signals.
	ExplainStarted = capitan.NewSignal(
		"ponte.explain.started",
		"Transform synapse beginning provenance narration",
	)
	ExplainCompleted = capitan.NewSignal(
		"ponte.explain.completed",
		"Transform synapse completed provenance narration",
	)
)

// Field keys for ponte event data.
var (
	// State identity.
	FieldStateID    = capitan.NewStringKey("state_id")
	FieldDerivedID  = capitan.NewStringKey("derived_id")
	FieldLayer      = capitan.NewStringKey("layer")
	FieldConfidence = capitan.NewFloat32Key("confidence")

	// Bridge identity.
	FieldBridge    = capitan.NewStringKey("bridge")
	FieldOp        = capitan.NewStringKey("op") // forward, backward, amplify
	FieldWantLayer = capitan.NewStringKey("want_layer")
	FieldGotLayer  = capitan.NewStringKey("got_layer")
	FieldBoost     = capitan.NewFloat32Key("boost")

	// Amplification metrics.
	FieldIteration      = capitan.NewIntKey("iteration")
	FieldIterations     = capitan.NewIntKey("iterations")
	FieldTotalFactor    = capitan.NewFloat32Key("total_factor")
	FieldConverged      = capitan.NewStringKey("converged") // "true" / "false"
	FieldUpConfidence   = capitan.NewFloat32Key("up_confidence")
	FieldDownConfidence = capitan.NewFloat32Key("down_confidence")

	// Routing metrics.
	FieldRoute       = capitan.NewStringKey("route")
	FieldPathway     = capitan.NewIntKey("pathway")
	FieldTemperature = capitan.NewFloat32Key("temperature")

	// Narration metrics.
	FieldAncestorCount = capitan.NewIntKey("ancestor_count")
	FieldContextSize   = capitan.NewIntKey("context_size") // character count

	// Error information.
	FieldError = capitan.NewErrorKey("error")
)
