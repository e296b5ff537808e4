package ponte

import "github.com/zoobzio/zyn"

// Default configuration for ponte operations.
// These can be overridden per-call or per-value with builder methods.
var (
	// DefaultMaxIterations is the round budget orchestrators typically
	// hand to Amplify. Bridges still enforce their own ceilings.
	DefaultMaxIterations = 8

	// DefaultConfidenceThreshold is the minimum analyzer confidence for
	// fast-path routing.
	DefaultConfidenceThreshold = 0.75

	// DefaultTemperatureThreshold is the maximum uncertainty temperature
	// the fast path tolerates.
	DefaultTemperatureThreshold = 0.45

	// DefaultExplainTemperature is used for the transform synapse that
	// narrates provenance. Defaults to creative for readable prose.
	DefaultExplainTemperature = zyn.DefaultTemperatureCreative
)
