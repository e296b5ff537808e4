package ponte

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/zoobzio/capitan"
)

// Route tags the two routing outcomes an analyzer can choose.
type Route string

const (
	// RouteFast sends the embedding down the gated fast path.
	RouteFast Route = "fast"
	// RouteDeep sends the embedding to the deep path with an uncertainty
	// temperature attached.
	RouteDeep Route = "deep"
)

// RoutingDecision is the tagged outcome of analyzing an embedding.
// GatingWeights is populated on the fast path; Temperature on the deep
// path. PrimaryPathway and Confidence are always set.
type RoutingDecision struct {
	Route          Route
	PrimaryPathway int
	GatingWeights  []float64 // fast path: per-head gating weights
	Temperature    float64   // deep path: uncertainty temperature
	Confidence     float64
}

// Analyzer scores an embedding and chooses a routing path. Implementations
// wrap an external scoring service or compute the score natively.
type Analyzer interface {
	Analyze(ctx context.Context, embedding Vector) (RoutingDecision, error)
}

// ErrNoAnalyzer is returned when no analyzer is configured.
var ErrNoAnalyzer = fmt.Errorf("no analyzer configured")

// Global analyzer state.
var (
	globalAnalyzer   Analyzer
	globalAnalyzerMu sync.RWMutex
)

// SetAnalyzer sets the global analyzer instance.
func SetAnalyzer(a Analyzer) {
	globalAnalyzerMu.Lock()
	defer globalAnalyzerMu.Unlock()
	globalAnalyzer = a
}

// GetAnalyzer returns the global analyzer instance.
func GetAnalyzer() Analyzer {
	globalAnalyzerMu.RLock()
	defer globalAnalyzerMu.RUnlock()
	return globalAnalyzer
}

// analyzerKey is the context key for analyzer.
type analyzerKey struct{}

// WithAnalyzer returns a context with the given analyzer.
func WithAnalyzer(ctx context.Context, a Analyzer) context.Context {
	return context.WithValue(ctx, analyzerKey{}, a)
}

// AnalyzerFromContext retrieves an analyzer from context.
func AnalyzerFromContext(ctx context.Context) (Analyzer, bool) {
	a, ok := ctx.Value(analyzerKey{}).(Analyzer)
	return a, ok
}

// ResolveAnalyzer finds an analyzer using the resolution hierarchy:
// 1. Explicit analyzer parameter (if non-nil)
// 2. Context analyzer
// 3. Global analyzer.
func ResolveAnalyzer(ctx context.Context, explicit Analyzer) (Analyzer, error) {
	if explicit != nil {
		return explicit, nil
	}
	if a, ok := AnalyzerFromContext(ctx); ok {
		return a, nil
	}
	if a := GetAnalyzer(); a != nil {
		return a, nil
	}
	return nil, ErrNoAnalyzer
}

// ThresholdAnalyzer is a native scorer: it projects the embedding onto a
// fixed set of pathway heads, softmaxes the scores into gating weights,
// and routes by comparing the resulting confidence/temperature pair
// against two configured thresholds. Confidence is the weight of the
// strongest head; temperature is the entropy of the weight distribution
// normalized to [0,1].
type ThresholdAnalyzer struct {
	heads                []Vector
	confidenceThreshold  float64 // fast path requires confidence >= this
	temperatureThreshold float64 // fast path requires temperature <= this
}

// NewThresholdAnalyzer creates a native analyzer over the given pathway
// projection heads. All heads must share one dimension.
func NewThresholdAnalyzer(heads []Vector, confidenceThreshold, temperatureThreshold float64) (*ThresholdAnalyzer, error) {
	if len(heads) == 0 {
		return nil, fmt.Errorf("threshold analyzer needs at least one pathway head")
	}
	dims := len(heads[0])
	if dims == 0 {
		return nil, fmt.Errorf("pathway heads must not be empty")
	}
	for i, h := range heads {
		if len(h) != dims {
			return nil, fmt.Errorf("pathway head %d has %d dimensions, want %d", i, len(h), dims)
		}
	}
	return &ThresholdAnalyzer{
		heads:                heads,
		confidenceThreshold:  confidenceThreshold,
		temperatureThreshold: temperatureThreshold,
	}, nil
}

// NewDefaultThresholdAnalyzer creates a native analyzer using the package
// default routing thresholds.
func NewDefaultThresholdAnalyzer(heads []Vector) (*ThresholdAnalyzer, error) {
	return NewThresholdAnalyzer(heads, DefaultConfidenceThreshold, DefaultTemperatureThreshold)
}

// Analyze implements Analyzer.
func (a *ThresholdAnalyzer) Analyze(ctx context.Context, embedding Vector) (RoutingDecision, error) {
	if len(embedding) != len(a.heads[0]) {
		return RoutingDecision{}, fmt.Errorf("embedding has %d dimensions, analyzer expects %d",
			len(embedding), len(a.heads[0]))
	}

	// Project onto each head, then softmax into gating weights.
	scores := make([]float64, len(a.heads))
	maxScore := math.Inf(-1)
	for i, h := range a.heads {
		scores[i] = h.Dot(embedding)
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	weights := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		weights[i] = math.Exp(s - maxScore)
		sum += weights[i]
	}

	primary := 0
	confidence := 0.0
	var entropy float64
	for i := range weights {
		weights[i] /= sum
		if weights[i] > confidence {
			confidence = weights[i]
			primary = i
		}
		if weights[i] > 0 {
			entropy -= weights[i] * math.Log(weights[i])
		}
	}

	temperature := 0.0
	if len(weights) > 1 {
		temperature = entropy / math.Log(float64(len(weights)))
	}

	decision := RoutingDecision{
		PrimaryPathway: primary,
		Confidence:     confidence,
	}
	if confidence >= a.confidenceThreshold && temperature <= a.temperatureThreshold {
		decision.Route = RouteFast
		decision.GatingWeights = weights
	} else {
		decision.Route = RouteDeep
		decision.Temperature = temperature
	}

	capitan.Emit(ctx, AnalyzeRouted,
		FieldRoute.Field(string(decision.Route)),
		FieldPathway.Field(decision.PrimaryPathway),
		FieldConfidence.Field(float32(decision.Confidence)),
		FieldTemperature.Field(float32(decision.Temperature)),
	)

	return decision, nil
}
