package ponte

import (
	"context"
	"math"
	"strconv"

	"github.com/zoobzio/capitan"
)

// AmplificationResult captures the outcome of one amplification run.
type AmplificationResult struct {
	// Up and Down are the boosted endpoints. Each preserves its input's
	// identity, payload, metadata, and provenance; only confidence changes.
	Up   *LayerState
	Down *LayerState

	// CombinedConfidence is the product of the two confidences after the loop.
	CombinedConfidence float64

	// AmplificationFactor is the running product of per-round boosts.
	AmplificationFactor float64

	// Iterations is the number of rounds actually executed.
	Iterations int

	// Converged reports genuine threshold attainment: true only when the
	// per-round boost dropped below the bridge's early-exit threshold
	// before the round budget ran out.
	Converged bool

	// Resonance is the invoking bridge's static constant, copied verbatim.
	Resonance float64
}

// Amplify implements Bridge. It trusts up and down to sit at this bridge's
// two endpoints and never fails. Each round couples the pair through the
// geometric mean of their confidences:
//
//	measure = sqrt(upConf * downConf)
//	boost   = 1 + measure * k
//
// Both confidences and the running factor are multiplied by boost. The
// loop runs at most min(maxIterations, ceiling) rounds and exits early
// once boost falls below the bridge's near-unity threshold, so termination
// is bounded regardless of input.
func (b *bridgeCore) Amplify(ctx context.Context, up, down *LayerState, maxIterations int) AmplificationResult {
	rounds := maxIterations
	if rounds > b.params.amplifyCeiling {
		rounds = b.params.amplifyCeiling
	}

	upConf := up.Confidence
	downConf := down.Confidence
	totalFactor := 1.0
	iterations := 0
	converged := false

	for i := 0; i < rounds; i++ {
		measure := math.Sqrt(upConf * downConf)
		boost := 1 + measure*b.params.amplifyGain

		upConf *= boost
		downConf *= boost
		totalFactor *= boost
		iterations++

		capitan.Emit(ctx, AmplifyIteration,
			FieldBridge.Field(b.params.name),
			FieldIteration.Field(iterations),
			FieldBoost.Field(float32(boost)),
			FieldUpConfidence.Field(float32(upConf)),
			FieldDownConfidence.Field(float32(downConf)),
		)

		if boost < 1+b.params.amplifyEpsilon {
			converged = true
			break
		}
	}

	result := AmplificationResult{
		Up:                  up.withConfidence(upConf),
		Down:                down.withConfidence(downConf),
		CombinedConfidence:  upConf * downConf,
		AmplificationFactor: totalFactor,
		Iterations:          iterations,
		Converged:           converged,
		Resonance:           b.params.resonance,
	}

	capitan.Emit(ctx, AmplifyCompleted,
		FieldBridge.Field(b.params.name),
		FieldIterations.Field(iterations),
		FieldTotalFactor.Field(float32(totalFactor)),
		FieldConverged.Field(strconv.FormatBool(converged)),
		FieldUpConfidence.Field(float32(upConf)),
		FieldDownConfidence.Field(float32(downConf)),
	)

	return result
}
