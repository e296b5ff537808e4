// Package ponte implements a multi-stage confidence-propagation pipeline:
// a fixed set of interpretive processing layers connected by bidirectional
// bridges that move confidence-weighted state envelopes between adjacent
// stages and iteratively cross-reinforce linked pairs until their
// confidences converge.
//
// # Core Types
//
// The package is built around three core concepts:
//
//   - [Layer] - A named stage in the interpretive pipeline (closed set)
//   - [LayerState] - A confidence-tagged envelope with an immutable payload and provenance chain
//   - [Bridge] - A bidirectional transform connecting exactly two layers
//
// # Creating States
//
// Orchestrators construct seed states; every other state comes out of a
// bridge operation:
//
//	seed := ponte.NewSeedState(ctx, ponte.LayerIntuition, ponte.NewPayload("intuitive hypothesis"), 0.90)
//
// # Bridges
//
// Five concrete bridges connect the standard stage pairs, each a value
// fixed at construction carrying only its coupling constants:
//
//   - [NewCrossDomainIntuitionBridge] - CrossDomain -> Intuition
//   - [NewIntuitionLanguageBridge] - Intuition -> MultilingualProcessing
//   - [NewLanguageCollaborativeBridge] - MultilingualProcessing -> CollaborativeLearning
//   - [NewCollaborativeExternalBridge] - CollaborativeLearning -> ExternalApis
//   - [NewIntuitionExternalBridge] - Intuition -> ExternalApis (shortcut)
//
// Every bridge exposes the same operation set. Forward moves a state to
// the bridge's target layer, attenuating confidence by a fixed factor.
// Backward refines feedback to the source layer, applying a conditional
// metadata-keyed boost where the bridge defines one. Amplify runs the
// bounded mutual-reinforcement loop on an already-linked pair and reports
// an [AmplificationResult]. Forward and Backward fail only with
// [ErrInvalidInput] when the input sits at the wrong layer; Amplify never
// fails.
//
// # Registry & Composition
//
// A [Registry] maps layer pairs to bridges, built once and read-only
// thereafter:
//
//	registry := ponte.DefaultRegistry()
//	bridge, ok := registry.Lookup(ponte.LayerIntuition, ponte.LayerExternalApis)
//
// Ponte wraps pipz connectors for multi-hop orchestration: [ForwardStep],
// [BackwardStep], and [Traverse] lift bridge operations into pipelines,
// with [Sequence], [Filter], [Switch], [Fallback], [Retry], [Backoff],
// [Timeout], [Concurrent], [Race], and [WorkerPool] for composition.
// Bridge operations are pure functions of their inputs plus static
// constants, so independent invocations parallelize freely.
//
// # Persistence
//
// The [Store] interface round-trips a state's identity, layer, confidence,
// metadata, and provenance. [SoyStore] persists to PostgreSQL via soy:
//
//	store, err := ponte.NewSoyStore(db)
//
// # Routing & Narration
//
// [Analyzer] is the boundary to the external embedding scorer; the native
// [ThresholdAnalyzer] softmaxes per-pathway projections and routes fast or
// deep against two configured thresholds. [Explain] narrates a state's
// derivation chain through a zyn transform synapse, resolving its
// provider call-level first, then from context ([WithProvider]), then
// globally ([SetProvider]).
//
// # Observability
//
// Ponte emits capitan signals throughout execution. See signals.go for the
// complete list, including StateCreated, ForwardCompleted,
// BackwardCompleted, BridgeRejected, AmplifyIteration, and
// AmplifyCompleted.
package ponte
