package ponte

import "fmt"

// Layer identifies a stage in the interpretive pipeline.
// The set of layers is closed: bridges validate inputs against it and the
// store rejects records carrying an unknown tag.
type Layer string

// Pipeline stages, in canonical forward order.
const (
	LayerCrossDomain           Layer = "cross_domain"
	LayerIntuition             Layer = "intuition"
	LayerMultilingual          Layer = "multilingual_processing"
	LayerCollaborativeLearning Layer = "collaborative_learning"
	LayerExternalApis          Layer = "external_apis"
)

// layers is the closed stage set in canonical order.
var layers = []Layer{
	LayerCrossDomain,
	LayerIntuition,
	LayerMultilingual,
	LayerCollaborativeLearning,
	LayerExternalApis,
}

// Layers returns the closed set of pipeline stages in canonical order.
// The returned slice is a copy.
func Layers() []Layer {
	out := make([]Layer, len(layers))
	copy(out, layers)
	return out
}

// String returns the layer's stable tag.
func (l Layer) String() string {
	return string(l)
}

// Valid reports whether l is a member of the closed stage set.
func (l Layer) Valid() bool {
	switch l {
	case LayerCrossDomain, LayerIntuition, LayerMultilingual,
		LayerCollaborativeLearning, LayerExternalApis:
		return true
	}
	return false
}

// ParseLayer converts a persisted tag back into a Layer.
// Unknown tags are rejected so stored states round-trip exactly.
func ParseLayer(s string) (Layer, error) {
	l := Layer(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown layer tag %q", s)
	}
	return l, nil
}
