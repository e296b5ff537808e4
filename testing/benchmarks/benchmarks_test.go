package benchmarks_test

import (
	"context"
	"testing"

	"github.com/zoobzio/ponte"
)

func BenchmarkSeedStateCreation(b *testing.B) {
	ctx := context.Background()
	payload := ponte.NewPayload("benchmark payload")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ponte.NewSeedState(ctx, ponte.LayerIntuition, payload, 0.9)
	}
}

func BenchmarkForward(b *testing.B) {
	ctx := context.Background()
	bridge := ponte.NewCrossDomainIntuitionBridge()
	seed := ponte.NewSeedState(ctx, ponte.LayerCrossDomain, ponte.NewPayload("benchmark payload"), 0.9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bridge.Forward(ctx, seed); err != nil {
			b.Fatalf("forward failed: %v", err)
		}
	}
}

func BenchmarkAmplify(b *testing.B) {
	ctx := context.Background()
	bridge := ponte.NewCrossDomainIntuitionBridge()
	up := ponte.NewSeedState(ctx, ponte.LayerCrossDomain, ponte.NewPayload("up"), 0.8)
	down := ponte.NewSeedState(ctx, ponte.LayerIntuition, ponte.NewPayload("down"), 0.8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bridge.Amplify(ctx, up, down, 10)
	}
}

func BenchmarkTraverseFullAscent(b *testing.B) {
	ctx := context.Background()
	registry := ponte.DefaultRegistry()

	chain, err := ponte.Traverse("bench-ascent", registry,
		ponte.LayerCrossDomain,
		ponte.LayerIntuition,
		ponte.LayerMultilingual,
		ponte.LayerCollaborativeLearning,
		ponte.LayerExternalApis,
	)
	if err != nil {
		b.Fatalf("traverse construction failed: %v", err)
	}

	seed := ponte.NewSeedState(ctx, ponte.LayerCrossDomain, ponte.NewPayload("benchmark payload"), 0.9)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Process(ctx, seed); err != nil {
			b.Fatalf("traversal failed: %v", err)
		}
	}
}
