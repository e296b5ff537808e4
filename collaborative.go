package ponte

// Coupling constants for the MultilingualProcessing <-> CollaborativeLearning pair.
const (
	collaborativeResonance      = 0.82
	collaborativeForwardFactor  = 0.90
	collaborativeBackwardFactor = 0.88
	collaborativeAmplifyGain    = 0.10
	collaborativeAmplifyCeiling = 8
	collaborativeAmplifyEpsilon = 0.008
)

// LanguageCollaborativeBridge connects multilingual processing with the
// collaborative learning layer, where articulated content is shared with
// peers and consensus flows back.
type LanguageCollaborativeBridge struct {
	bridgeCore
}

// NewLanguageCollaborativeBridge creates the MultilingualProcessing -> CollaborativeLearning bridge.
func NewLanguageCollaborativeBridge() *LanguageCollaborativeBridge {
	return &LanguageCollaborativeBridge{bridgeCore{params: bridgeParams{
		name:           "language-collaborative",
		source:         LayerMultilingual,
		target:         LayerCollaborativeLearning,
		resonance:      collaborativeResonance,
		forwardFactor:  collaborativeForwardFactor,
		backwardFactor: collaborativeBackwardFactor,
		amplifyGain:    collaborativeAmplifyGain,
		amplifyCeiling: collaborativeAmplifyCeiling,
		amplifyEpsilon: collaborativeAmplifyEpsilon,
		forwardMeta: map[string]string{
			"transform":    "language_to_collaborative",
			"sharing_mode": "broadcast",
		},
		backwardMeta: map[string]string{
			"refinement": "consensus_feedback",
		},
	}}}
}
