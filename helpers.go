package ponte

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/pipz"
)

// -----------------------------------------------------------------------------
// Bridge Steps - lift bridge operations into pipz processors
// -----------------------------------------------------------------------------

// ForwardStep wraps a bridge's forward traversal as a pipeline step.
//
// Example:
//
//	step := ponte.ForwardStep(ponte.NewCrossDomainIntuitionBridge())
//	intuition, err := step.Process(ctx, seed)
func ForwardStep(b Bridge) pipz.Processor[*LayerState] {
	name := pipz.Name(b.Name() + "-forward")
	return pipz.Apply(name, func(ctx context.Context, s *LayerState) (*LayerState, error) {
		return b.Forward(ctx, s)
	})
}

// BackwardStep wraps a bridge's backward refinement as a pipeline step.
func BackwardStep(b Bridge) pipz.Processor[*LayerState] {
	name := pipz.Name(b.Name() + "-backward")
	return pipz.Apply(name, func(ctx context.Context, s *LayerState) (*LayerState, error) {
		return b.Backward(ctx, s)
	})
}

// Traverse composes a multi-hop forward path through the registry into a
// single sequential pipeline. path lists the layers to visit in order;
// every adjacent pair must have a registered bridge.
//
// Example:
//
//	chain, err := ponte.Traverse("full-ascent", registry,
//	    ponte.LayerCrossDomain,
//	    ponte.LayerIntuition,
//	    ponte.LayerMultilingual,
//	)
//	final, err := chain.Process(ctx, seed)
func Traverse(name string, r *Registry, path ...Layer) (*pipz.Sequence[*LayerState], error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("traverse %q: path needs at least two layers, got %d", name, len(path))
	}

	steps := make([]pipz.Chainable[*LayerState], 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		b, ok := r.Lookup(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("traverse %q: no bridge registered for %s -> %s", name, path[i], path[i+1])
		}
		steps = append(steps, ForwardStep(b))
	}

	return pipz.NewSequence(pipz.Name(name), steps...), nil
}

// Reinforce amplifies an already-linked pair through the bridge with the
// package default round budget.
func Reinforce(ctx context.Context, b Bridge, up, down *LayerState) AmplificationResult {
	return b.Amplify(ctx, up, down, DefaultMaxIterations)
}

// -----------------------------------------------------------------------------
// Adapter Functions - wrap functions to create state processors
// -----------------------------------------------------------------------------

// Do creates a processor from a custom function that can fail.
//
// Example:
//
//	persist := ponte.Do("persist", func(ctx context.Context, s *ponte.LayerState) (*ponte.LayerState, error) {
//	    return s, store.SaveState(ctx, s)
//	})
func Do(name string, fn func(context.Context, *LayerState) (*LayerState, error)) pipz.Processor[*LayerState] {
	return pipz.Apply(pipz.Name(name), fn)
}

// Transform creates a processor from a transformation that cannot fail.
//
// Example:
//
//	tag := ponte.Transform("tag-run", func(ctx context.Context, s *ponte.LayerState) *ponte.LayerState {
//	    s.SetMetadata("run", runID)
//	    return s
//	})
func Transform(name string, fn func(context.Context, *LayerState) *LayerState) pipz.Processor[*LayerState] {
	return pipz.Transform(pipz.Name(name), fn)
}

// Effect creates a processor that observes a state without modifying it.
// Useful for logging, metrics, or assertions between hops.
func Effect(name string, fn func(context.Context, *LayerState) error) pipz.Processor[*LayerState] {
	return pipz.Effect(pipz.Name(name), fn)
}

// -----------------------------------------------------------------------------
// Connectors - compose state processors
// -----------------------------------------------------------------------------

// Sequence creates a sequential pipeline of state processors.
func Sequence(name string, processors ...pipz.Chainable[*LayerState]) *pipz.Sequence[*LayerState] {
	return pipz.NewSequence(pipz.Name(name), processors...)
}

// Filter conditionally executes a processor. When the predicate returns
// false, the state passes through unchanged.
//
// Example:
//
//	confident := ponte.Filter("confident-only",
//	    func(ctx context.Context, s *ponte.LayerState) bool { return s.Confidence >= 0.5 },
//	    ponte.ForwardStep(bridge),
//	)
func Filter(name string, predicate func(context.Context, *LayerState) bool, processor pipz.Chainable[*LayerState]) *pipz.Filter[*LayerState] {
	return pipz.NewFilter(pipz.Name(name), predicate, processor)
}

// Switch routes states to different processors keyed by the condition
// function. Natural for layer-keyed routing:
//
//	router := ponte.Switch("by-layer", func(ctx context.Context, s *ponte.LayerState) ponte.Layer {
//	    return s.Layer
//	})
//	router.AddRoute(ponte.LayerIntuition, intuitionHandler)
func Switch[K comparable](name string, condition func(context.Context, *LayerState) K) *pipz.Switch[*LayerState, K] {
	return pipz.NewSwitch(pipz.Name(name), condition)
}

// Fallback tries each processor in order until one succeeds.
func Fallback(name string, processors ...pipz.Chainable[*LayerState]) *pipz.Fallback[*LayerState] {
	return pipz.NewFallback(pipz.Name(name), processors...)
}

// Retry retries a processor on failure up to maxAttempts times.
func Retry(name string, processor pipz.Chainable[*LayerState], maxAttempts int) *pipz.Retry[*LayerState] {
	return pipz.NewRetry(pipz.Name(name), processor, maxAttempts)
}

// Backoff retries with exponential backoff between attempts.
func Backoff(name string, processor pipz.Chainable[*LayerState], maxAttempts int, baseDelay time.Duration) *pipz.Backoff[*LayerState] {
	return pipz.NewBackoff(pipz.Name(name), processor, maxAttempts, baseDelay)
}

// Timeout enforces a time limit on a processor.
func Timeout(name string, processor pipz.Chainable[*LayerState], duration time.Duration) *pipz.Timeout[*LayerState] {
	return pipz.NewTimeout(pipz.Name(name), processor, duration)
}

// -----------------------------------------------------------------------------
// Parallel Connectors
// Bridge operations are pure, so independent invocations are embarrassingly
// parallel. These require *LayerState's Clone (see state.go), which hands
// each branch an isolated copy sharing the payload handle.
// -----------------------------------------------------------------------------

// Concurrent runs all processors in parallel on isolated clones and uses
// the reducer to aggregate results onto the original state.
func Concurrent(name string, reducer func(original *LayerState, results map[pipz.Name]*LayerState, errors map[pipz.Name]error) *LayerState, processors ...pipz.Chainable[*LayerState]) *pipz.Concurrent[*LayerState] {
	return pipz.NewConcurrent(pipz.Name(name), reducer, processors...)
}

// Race runs all processors in parallel and returns the first success.
//
// Example:
//
//	fastest := ponte.Race("reach-external",
//	    ponte.ForwardStep(intuitionExternal),          // one hop
//	    languageCollaborativeExternalChain,            // three hops
//	)
func Race(name string, processors ...pipz.Chainable[*LayerState]) *pipz.Race[*LayerState] {
	return pipz.NewRace(pipz.Name(name), processors...)
}

// WorkerPool bounds parallelism across processors with a fixed worker count.
func WorkerPool(name string, workers int, processors ...pipz.Chainable[*LayerState]) *pipz.WorkerPool[*LayerState] {
	return pipz.NewWorkerPool(pipz.Name(name), workers, processors...)
}
