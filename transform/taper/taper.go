package taper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-series/series"
	"github.com/cwbudde/algo-series/transform"
)

// Option configures a Taper.
type Option func(*config) error

type config struct {
	alpha    float64
	hasAlpha bool
}

func defaultConfig() config {
	return config{}
}

// WithAlpha sets the shape parameter for parametric windows: Kaiser
// beta, Tukey taper ratio, Gaussian sigma. Windows without a shape
// parameter ignore it.
func WithAlpha(v float64) Option {
	return func(c *config) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("taper: alpha must be finite and >= 0, got %f", v)
		}

		c.alpha = v
		c.hasAlpha = true

		return nil
	}
}

// Taper multiplies every channel by a window function along the time
// axis. The window length always matches the series length, so the
// same Taper serves inputs of any size.
type Taper struct {
	win      window.Type
	alpha    float64
	hasAlpha bool
}

// New returns a Taper for the given window type.
func New(win window.Type, opts ...Option) (*Taper, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Taper{win: win, alpha: cfg.alpha, hasAlpha: cfg.hasAlpha}, nil
}

// Window reports the configured window type.
func (tp *Taper) Window() window.Type {
	return tp.win
}

// Fit is a no-op.
func (tp *Taper) Fit(x *series.Series) error {
	return nil
}

// Transform returns a copy of x with each time point scaled by the
// window coefficient for that position. The input is not modified.
func (tp *Taper) Transform(x *series.Series) (*series.Series, error) {
	if x.Len() == 0 {
		return x.Clone(), nil
	}

	coeffs := tp.coefficients(x.Len())

	out := series.New(x.Len(), x.Channels())
	for t := range x.Len() {
		vecmath.ScaleBlock(out.Row(t), x.Row(t), coeffs[t])
	}

	return out, nil
}

// TransformPanel tapers every instance of the panel with the same
// window.
func (tp *Taper) TransformPanel(x *series.Panel) (*series.Panel, error) {
	if x.Len() == 0 {
		return x.Clone(), nil
	}

	coeffs := tp.coefficients(x.Len())

	out := x.Clone()
	for i := range out.Instances() {
		inst := out.Instance(i)
		for c := range inst {
			vecmath.MulBlockInPlace(inst[c], coeffs)
		}
	}

	return out, nil
}

// Tags describes the transformer.
func (tp *Taper) Tags() transform.Tags {
	return transform.Tags{
		Input:        transform.KindSeries,
		Output:       transform.KindSeries,
		Instancewise: true,
		FitIsEmpty:   true,
	}
}

func (tp *Taper) coefficients(n int) []float64 {
	if tp.hasAlpha {
		return window.Generate(tp.win, n, window.WithAlpha(tp.alpha))
	}

	return window.Generate(tp.win, n)
}
