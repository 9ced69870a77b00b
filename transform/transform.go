package transform

import (
	"github.com/cwbudde/algo-series/series"
)

// Kind identifies the data representation a transformer consumes or
// produces.
type Kind int

const (
	// KindSeries is a single multichannel series.
	KindSeries Kind = iota
	// KindPanel is a collection of equally shaped series instances.
	KindPanel
)

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindPanel:
		return "panel"
	default:
		return "unknown"
	}
}

// Tags describes the static capabilities of a transformer.
type Tags struct {
	// Input and Output name the representation consumed and produced.
	Input  Kind
	Output Kind

	// Instancewise reports whether panel instances are transformed
	// independently of each other.
	Instancewise bool

	// FitIsEmpty reports whether Fit is a no-op, so Transform may be
	// called on a freshly constructed transformer.
	FitIsEmpty bool

	// UsesLabels reports whether Fit consumes label data. Transformers
	// in this module are unsupervised and report false.
	UsesLabels bool

	// Requires lists the filtering backends that must be registered
	// for Transform to succeed.
	Requires []string
}

// Transformer maps one series to another.
//
// Implementations must not mutate the input and must not return memory
// aliased to it.
type Transformer interface {
	// Fit prepares the transformer for the given series. Transformers
	// whose Tags report FitIsEmpty accept Transform without a prior
	// Fit.
	Fit(x *series.Series) error

	// Transform returns the transformed series.
	Transform(x *series.Series) (*series.Series, error)

	// Tags reports static capabilities.
	Tags() Tags
}

// PanelTransformer is implemented by transformers that also accept
// panels, transforming each instance independently.
type PanelTransformer interface {
	Transformer

	// TransformPanel returns the transformed panel.
	TransformPanel(x *series.Panel) (*series.Panel, error)
}

// FitTransform fits t to x, then returns the transformed series.
func FitTransform(t Transformer, x *series.Series) (*series.Series, error) {
	if err := t.Fit(x); err != nil {
		return nil, err
	}

	return t.Transform(x)
}
