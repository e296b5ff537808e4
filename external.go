package ponte

// Coupling constants for the CollaborativeLearning <-> ExternalApis pair.
// The backward factor exceeds the forward factor by a wide margin: results
// returning from external services are authoritative in a way the outbound
// consensus is not, and externally validated feedback earns a further boost.
const (
	externalResonance      = 0.78
	externalForwardFactor  = 0.85
	externalBackwardFactor = 0.95
	externalAmplifyGain    = 0.08
	externalAmplifyCeiling = 6
	externalAmplifyEpsilon = 0.005

	// externalValidatedFlag marks feedback an external service confirmed.
	externalValidatedFlag  = "validated"
	externalValidatedBoost = 1.10
)

// CollaborativeExternalBridge connects collaborative learning with the
// external API layer.
type CollaborativeExternalBridge struct {
	bridgeCore
}

// NewCollaborativeExternalBridge creates the CollaborativeLearning -> ExternalApis bridge.
func NewCollaborativeExternalBridge() *CollaborativeExternalBridge {
	return &CollaborativeExternalBridge{bridgeCore{params: bridgeParams{
		name:           "collaborative-external",
		source:         LayerCollaborativeLearning,
		target:         LayerExternalApis,
		resonance:      externalResonance,
		forwardFactor:  externalForwardFactor,
		backwardFactor: externalBackwardFactor,
		boostFlag:      externalValidatedFlag,
		boostFactor:    externalValidatedBoost,
		amplifyGain:    externalAmplifyGain,
		amplifyCeiling: externalAmplifyCeiling,
		amplifyEpsilon: externalAmplifyEpsilon,
		forwardMeta: map[string]string{
			"transform":   "collaborative_to_external",
			"export_mode": "consensus",
		},
		backwardMeta: map[string]string{
			"refinement": "external_feedback",
		},
	}}}
}
