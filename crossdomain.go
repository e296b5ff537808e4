package ponte

// Coupling constants for the CrossDomain <-> Intuition pair. The tightest
// coupling in the pipeline: analogical synthesis and intuitive leaps feed
// each other almost losslessly, so this bridge carries the highest
// resonance, the gentlest attenuation, and the most aggressive
// amplification budget.
const (
	crossDomainResonance      = 0.90
	crossDomainForwardFactor  = 0.95
	crossDomainBackwardFactor = 0.93
	crossDomainAmplifyGain    = 0.15
	crossDomainAmplifyCeiling = 10
	crossDomainAmplifyEpsilon = 0.01
)

// CrossDomainIntuitionBridge connects cross-domain synthesis with the
// intuition layer.
type CrossDomainIntuitionBridge struct {
	bridgeCore
}

// NewCrossDomainIntuitionBridge creates the CrossDomain -> Intuition bridge.
func NewCrossDomainIntuitionBridge() *CrossDomainIntuitionBridge {
	return &CrossDomainIntuitionBridge{bridgeCore{params: bridgeParams{
		name:           "crossdomain-intuition",
		source:         LayerCrossDomain,
		target:         LayerIntuition,
		resonance:      crossDomainResonance,
		forwardFactor:  crossDomainForwardFactor,
		backwardFactor: crossDomainBackwardFactor,
		amplifyGain:    crossDomainAmplifyGain,
		amplifyCeiling: crossDomainAmplifyCeiling,
		amplifyEpsilon: crossDomainAmplifyEpsilon,
		forwardMeta: map[string]string{
			"transform":      "cross_domain_to_intuition",
			"synthesis_mode": "analogical",
		},
		backwardMeta: map[string]string{
			"refinement": "intuitive_feedback",
		},
	}}}
}
