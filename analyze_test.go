package ponte

import (
	"context"
	"errors"
	"math"
	"testing"
)

func newTestAnalyzer(t *testing.T) *ThresholdAnalyzer {
	t.Helper()

	heads := []Vector{
		{10, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	analyzer, err := NewThresholdAnalyzer(heads, 0.75, 0.45)
	if err != nil {
		t.Fatalf("failed to build analyzer: %v", err)
	}
	return analyzer
}

func TestAnalyzeRoutesFastOnConfidentEmbedding(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// Strongly aligned with head 0: one dominant gating weight.
	decision, err := analyzer.Analyze(context.Background(), Vector{1, 0, 0})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if decision.Route != RouteFast {
		t.Fatalf("expected fast route, got %s", decision.Route)
	}
	if decision.PrimaryPathway != 0 {
		t.Errorf("expected primary pathway 0, got %d", decision.PrimaryPathway)
	}
	if len(decision.GatingWeights) != 3 {
		t.Fatalf("expected 3 gating weights, got %d", len(decision.GatingWeights))
	}

	var sum float64
	for _, w := range decision.GatingWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("gating weights should sum to 1, got %f", sum)
	}
	if decision.Confidence < 0.75 {
		t.Errorf("expected confidence above the fast threshold, got %f", decision.Confidence)
	}
}

func TestAnalyzeRoutesDeepOnUncertainEmbedding(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// Split between heads 1 and 2: no dominant pathway.
	decision, err := analyzer.Analyze(context.Background(), Vector{0, 1, 1})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if decision.Route != RouteDeep {
		t.Fatalf("expected deep route, got %s", decision.Route)
	}
	if decision.Temperature <= 0 || decision.Temperature > 1 {
		t.Errorf("expected temperature in (0,1], got %f", decision.Temperature)
	}
	if decision.GatingWeights != nil {
		t.Error("deep decisions should not carry gating weights")
	}
}

func TestAnalyzeRejectsDimensionMismatch(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	if _, err := analyzer.Analyze(context.Background(), Vector{1, 0}); err == nil {
		t.Error("expected error for mismatched embedding dimensions")
	}
}

func TestNewThresholdAnalyzerValidation(t *testing.T) {
	if _, err := NewThresholdAnalyzer(nil, 0.75, 0.45); err == nil {
		t.Error("expected error for empty head set")
	}
	if _, err := NewThresholdAnalyzer([]Vector{{1, 2}, {1}}, 0.75, 0.45); err == nil {
		t.Error("expected error for mismatched head dimensions")
	}
}

func TestNewDefaultThresholdAnalyzer(t *testing.T) {
	analyzer, err := NewDefaultThresholdAnalyzer([]Vector{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("failed to build analyzer: %v", err)
	}

	// A balanced embedding cannot clear the default confidence threshold.
	decision, err := analyzer.Analyze(context.Background(), Vector{1, 1})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if decision.Route != RouteDeep {
		t.Errorf("expected deep route for a balanced embedding, got %s", decision.Route)
	}
}

func TestResolveAnalyzerHierarchy(t *testing.T) {
	explicit := newTestAnalyzer(t)
	contextual := newTestAnalyzer(t)
	global := newTestAnalyzer(t)

	ctx := context.Background()

	// No analyzer anywhere.
	if _, err := ResolveAnalyzer(ctx, nil); !errors.Is(err, ErrNoAnalyzer) {
		t.Errorf("expected ErrNoAnalyzer, got %v", err)
	}

	// Global fallback.
	SetAnalyzer(global)
	defer SetAnalyzer(nil)

	resolved, err := ResolveAnalyzer(ctx, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != Analyzer(global) {
		t.Error("expected the global analyzer")
	}

	// Context overrides global.
	ctx = WithAnalyzer(ctx, contextual)
	resolved, err = ResolveAnalyzer(ctx, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != Analyzer(contextual) {
		t.Error("expected the context analyzer")
	}

	// Explicit overrides both.
	resolved, err = ResolveAnalyzer(ctx, explicit)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved != Analyzer(explicit) {
		t.Error("expected the explicit analyzer")
	}
}
