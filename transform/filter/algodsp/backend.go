package algodsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design/pass"

	"github.com/cwbudde/algo-series/transform/filter"
)

// Name is the registry name of this backend.
const Name = "algo-dsp"

func init() {
	filter.MustRegisterBackend(Name, Backend{})
}

// Option keys understood by the backend.
const (
	// ParamFamily selects the IIR design family. Valid values are the
	// Family* constants; default is FamilyButterworth.
	ParamFamily = "family"

	// ParamOrder sets the design order per band edge, an integer in
	// [1, 16]. Default is 4.
	ParamOrder = "order"

	// ParamRippleDB sets the passband ripple in dB for chebyshev1 and
	// elliptic designs. Default is 1.
	ParamRippleDB = "ripple_db"

	// ParamStopbandDB sets the stopband attenuation in dB for
	// chebyshev2 and elliptic designs. Default is 40.
	ParamStopbandDB = "stopband_db"
)

// Values for ParamFamily.
const (
	FamilyButterworth = "butterworth"
	FamilyChebyshev1  = "chebyshev1"
	FamilyChebyshev2  = "chebyshev2"
	FamilyBessel      = "bessel"
	FamilyElliptic    = "elliptic"
)

const (
	defaultOrder      = 4
	maxOrder          = 16
	defaultRippleDB   = 1.0
	defaultStopbandDB = 40.0
)

// Errors returned by FilterData.
var (
	ErrSampleRate   = errors.New("algodsp: sample rate must be positive and finite")
	ErrNoCutoff     = errors.New("algodsp: at least one cutoff frequency required")
	ErrCutoffRange  = errors.New("algodsp: cutoff must be above 0 and below Nyquist")
	ErrEmptyData    = errors.New("algodsp: empty data")
	ErrUnknownParam = errors.New("algodsp: unknown option")
	ErrParamValue   = errors.New("algodsp: invalid option value")
	ErrDesign       = errors.New("algodsp: filter design failed")
)

// Backend filters multichannel data with IIR cascades from algo-dsp.
// Application is causal; every channel is processed by a fresh cascade,
// so no state crosses channels or calls. The zero value designs
// butterworth cascades of order 4; requests override the defaults
// through Params.
type Backend struct {
	defaultFamily string
	defaultOrder  int
}

// Option configures a Backend.
type Option func(*Backend) error

// WithDefaultFamily sets the design family used when a request carries
// no "family" option.
func WithDefaultFamily(name string) Option {
	return func(b *Backend) error {
		switch name {
		case FamilyButterworth, FamilyChebyshev1, FamilyChebyshev2, FamilyBessel, FamilyElliptic:
			b.defaultFamily = name
			return nil
		default:
			return fmt.Errorf("%w: %s=%q", ErrParamValue, ParamFamily, name)
		}
	}
}

// WithDefaultOrder sets the cascade order used when a request carries
// no "order" option.
func WithDefaultOrder(n int) Option {
	return func(b *Backend) error {
		if n < 1 || n > maxOrder {
			return fmt.Errorf("%w: %s=%d", ErrParamValue, ParamOrder, n)
		}

		b.defaultOrder = n

		return nil
	}
}

// New returns a Backend with the given design defaults. Registering a
// configured Backend under its own name is the caller's business; the
// package init already registers the zero value as "algo-dsp".
func New(opts ...Option) (*Backend, error) {
	b := &Backend{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// FilterData implements filter.Backend. data is channel-major; a cutoff
// of 0 disables that band edge. The input is left untouched and the
// result is freshly allocated with the input's shape.
func (b Backend) FilterData(data [][]float64, sfreq, lowHz, highHz float64, p filter.Params) ([][]float64, error) {
	if math.IsNaN(sfreq) || math.IsInf(sfreq, 0) || sfreq <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrSampleRate, sfreq)
	}

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	for _, ch := range data {
		if len(ch) == 0 {
			return nil, ErrEmptyData
		}
	}

	spec, err := b.parseSpec(sfreq, lowHz, highHz, p)
	if err != nil {
		return nil, err
	}

	coeffs, err := spec.design()
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(data))
	for i, ch := range data {
		buf := make([]float64, len(ch))
		copy(buf, ch)

		chain := biquad.NewChain(coeffs)
		chain.ProcessBlock(buf)

		out[i] = buf
	}

	return out, nil
}

// designSpec is a validated filtering request.
type designSpec struct {
	family     string
	order      int
	rippleDB   float64
	stopbandDB float64
	sfreq      float64
	lowHz      float64
	highHz     float64
}

func (b Backend) parseSpec(sfreq, lowHz, highHz float64, p filter.Params) (designSpec, error) {
	spec := designSpec{
		family:     b.defaultFamily,
		order:      b.defaultOrder,
		rippleDB:   defaultRippleDB,
		stopbandDB: defaultStopbandDB,
		sfreq:      sfreq,
	}

	if spec.family == "" {
		spec.family = FamilyButterworth
	}

	if spec.order == 0 {
		spec.order = defaultOrder
	}

	for key := range p.Str {
		if key != ParamFamily {
			return designSpec{}, fmt.Errorf("%w: %q", ErrUnknownParam, key)
		}
	}

	for key := range p.Num {
		switch key {
		case ParamOrder, ParamRippleDB, ParamStopbandDB:
		default:
			return designSpec{}, fmt.Errorf("%w: %q", ErrUnknownParam, key)
		}
	}

	if v, ok := p.Str[ParamFamily]; ok {
		switch v {
		case FamilyButterworth, FamilyChebyshev1, FamilyChebyshev2, FamilyBessel, FamilyElliptic:
			spec.family = v
		default:
			return designSpec{}, fmt.Errorf("%w: %s=%q", ErrParamValue, ParamFamily, v)
		}
	}

	if v, ok := p.Num[ParamOrder]; ok {
		if math.IsNaN(v) || v != math.Trunc(v) || v < 1 || v > maxOrder {
			return designSpec{}, fmt.Errorf("%w: %s=%v", ErrParamValue, ParamOrder, v)
		}

		spec.order = int(v)
	}

	if v, ok := p.Num[ParamRippleDB]; ok {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return designSpec{}, fmt.Errorf("%w: %s=%v", ErrParamValue, ParamRippleDB, v)
		}

		spec.rippleDB = v
	}

	if v, ok := p.Num[ParamStopbandDB]; ok {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return designSpec{}, fmt.Errorf("%w: %s=%v", ErrParamValue, ParamStopbandDB, v)
		}

		spec.stopbandDB = v
	}

	if lowHz == 0 && highHz == 0 {
		return designSpec{}, ErrNoCutoff
	}

	nyquist := sfreq / 2
	if lowHz != 0 && !validCutoff(lowHz, nyquist) {
		return designSpec{}, fmt.Errorf("%w: low %f at sample rate %f", ErrCutoffRange, lowHz, sfreq)
	}

	if highHz != 0 && !validCutoff(highHz, nyquist) {
		return designSpec{}, fmt.Errorf("%w: high %f at sample rate %f", ErrCutoffRange, highHz, sfreq)
	}

	if lowHz != 0 && highHz != 0 && lowHz >= highHz {
		return designSpec{}, fmt.Errorf("%w: low %f must be below high %f", ErrCutoffRange, lowHz, highHz)
	}

	spec.lowHz = lowHz
	spec.highHz = highHz

	return spec, nil
}

func validCutoff(hz, nyquist float64) bool {
	return !math.IsNaN(hz) && !math.IsInf(hz, 0) && hz > 0 && hz < nyquist
}

// design builds the biquad cascade: high-pass sections for the low
// cutoff first, then low-pass sections for the high cutoff.
func (s designSpec) design() ([]biquad.Coefficients, error) {
	var coeffs []biquad.Coefficients

	if s.lowHz != 0 {
		hp := s.highpass(s.lowHz)
		if len(hp) == 0 {
			return nil, fmt.Errorf("%w: %s high-pass at %f Hz", ErrDesign, s.family, s.lowHz)
		}

		coeffs = append(coeffs, hp...)
	}

	if s.highHz != 0 {
		lp := s.lowpass(s.highHz)
		if len(lp) == 0 {
			return nil, fmt.Errorf("%w: %s low-pass at %f Hz", ErrDesign, s.family, s.highHz)
		}

		coeffs = append(coeffs, lp...)
	}

	return coeffs, nil
}

func (s designSpec) highpass(freq float64) []biquad.Coefficients {
	switch s.family {
	case FamilyChebyshev1:
		return pass.Chebyshev1HP(freq, s.order, s.rippleDB, s.sfreq)
	case FamilyChebyshev2:
		return pass.Chebyshev2HP(freq, s.order, s.stopbandDB, s.sfreq)
	case FamilyBessel:
		return pass.BesselHP(freq, s.order, s.sfreq)
	case FamilyElliptic:
		return pass.EllipticHP(freq, s.order, s.rippleDB, s.stopbandDB, s.sfreq)
	default:
		return pass.ButterworthHP(freq, s.order, s.sfreq)
	}
}

func (s designSpec) lowpass(freq float64) []biquad.Coefficients {
	switch s.family {
	case FamilyChebyshev1:
		return pass.Chebyshev1LP(freq, s.order, s.rippleDB, s.sfreq)
	case FamilyChebyshev2:
		return pass.Chebyshev2LP(freq, s.order, s.stopbandDB, s.sfreq)
	case FamilyBessel:
		return pass.BesselLP(freq, s.order, s.sfreq)
	case FamilyElliptic:
		return pass.EllipticLP(freq, s.order, s.rippleDB, s.stopbandDB, s.sfreq)
	default:
		return pass.ButterworthLP(freq, s.order, s.sfreq)
	}
}
