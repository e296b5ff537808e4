package ponte

// Coupling constants for the Intuition <-> MultilingualProcessing pair.
const (
	languageResonance      = 0.85
	languageForwardFactor  = 0.92
	languageBackwardFactor = 0.90
	languageAmplifyGain    = 0.12
	languageAmplifyCeiling = 8
	languageAmplifyEpsilon = 0.008
)

// IntuitionLanguageBridge connects the intuition layer with multilingual
// processing. Forward traversal articulates an intuitive leap into
// language; backward traversal feeds the articulated form back for
// refinement, which carries slightly less signal than articulation itself.
type IntuitionLanguageBridge struct {
	bridgeCore
}

// NewIntuitionLanguageBridge creates the Intuition -> MultilingualProcessing bridge.
func NewIntuitionLanguageBridge() *IntuitionLanguageBridge {
	return &IntuitionLanguageBridge{bridgeCore{params: bridgeParams{
		name:           "intuition-language",
		source:         LayerIntuition,
		target:         LayerMultilingual,
		resonance:      languageResonance,
		forwardFactor:  languageForwardFactor,
		backwardFactor: languageBackwardFactor,
		amplifyGain:    languageAmplifyGain,
		amplifyCeiling: languageAmplifyCeiling,
		amplifyEpsilon: languageAmplifyEpsilon,
		forwardMeta: map[string]string{
			"transform":    "intuition_to_language",
			"articulation": "verbal",
		},
		backwardMeta: map[string]string{
			"refinement": "linguistic_feedback",
		},
	}}}
}
