package ponte

// Coupling constants for the Intuition <-> ExternalApis pair. This is the
// shortcut bridge: it skips the language and collaborative layers to test
// an intuitive hypothesis directly against external services, trading the
// weakest resonance in the pipeline for a fast round trip. Externally
// verified feedback earns the largest conditional boost of any bridge.
const (
	expressResonance      = 0.75
	expressForwardFactor  = 0.80
	expressBackwardFactor = 0.88
	expressAmplifyGain    = 0.09
	expressAmplifyCeiling = 6
	expressAmplifyEpsilon = 0.006

	// expressVerifiedFlag marks feedback an external service verified.
	expressVerifiedFlag  = "verified"
	expressVerifiedBoost = 1.15
)

// IntuitionExternalBridge connects the intuition layer directly to the
// external API layer.
type IntuitionExternalBridge struct {
	bridgeCore
}

// NewIntuitionExternalBridge creates the Intuition -> ExternalApis bridge.
func NewIntuitionExternalBridge() *IntuitionExternalBridge {
	return &IntuitionExternalBridge{bridgeCore{params: bridgeParams{
		name:           "intuition-external",
		source:         LayerIntuition,
		target:         LayerExternalApis,
		resonance:      expressResonance,
		forwardFactor:  expressForwardFactor,
		backwardFactor: expressBackwardFactor,
		boostFlag:      expressVerifiedFlag,
		boostFactor:    expressVerifiedBoost,
		amplifyGain:    expressAmplifyGain,
		amplifyCeiling: expressAmplifyCeiling,
		amplifyEpsilon: expressAmplifyEpsilon,
		forwardMeta: map[string]string{
			"transform":       "intuition_to_external",
			"hypothesis_type": "intuitive",
		},
		backwardMeta: map[string]string{
			"refinement": "verification_feedback",
		},
	}}}
}
