package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-series/series"
	"github.com/cwbudde/algo-series/transform"
)

// Errors returned by PSD.
var (
	ErrSampleRate  = errors.New("spectral: sample rate must be positive and finite")
	ErrFFTSize     = errors.New("spectral: fft size must be a power of two")
	ErrEmptyInput  = errors.New("spectral: empty input")
	ErrInputLength = errors.New("spectral: input longer than fft size")
)

// Option configures a PSD.
type Option func(*config) error

type config struct {
	win  window.Type
	nfft int
}

func defaultConfig() config {
	return config{win: window.TypeHann}
}

// WithWindow selects the taper applied before the transform. Default
// is Hann.
func WithWindow(win window.Type) Option {
	return func(c *config) error {
		c.win = win

		return nil
	}
}

// WithNFFT fixes the transform size instead of deriving it from the
// input length. n must be a power of two; shorter inputs are
// zero-padded and longer inputs are rejected.
func WithNFFT(n int) Option {
	return func(c *config) error {
		if !isPowerOf2(n) {
			return fmt.Errorf("%w: %d", ErrFFTSize, n)
		}

		c.nfft = n

		return nil
	}
}

// PSD estimates the one-sided power spectral density of every channel
// with a single windowed periodogram, scaled to power per Hz. The
// result has nfft/2+1 frequency rows ordered from DC to Nyquist, with
// interior bins doubled to account for the discarded negative
// frequencies.
type PSD struct {
	sfreq float64
	win   window.Type
	nfft  int
}

// NewPSD returns a PSD estimator for data sampled at sfreq Hz.
func NewPSD(sfreq float64, opts ...Option) (*PSD, error) {
	if math.IsNaN(sfreq) || math.IsInf(sfreq, 0) || sfreq <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrSampleRate, sfreq)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &PSD{sfreq: sfreq, win: cfg.win, nfft: cfg.nfft}, nil
}

// SampleRate reports the configured sampling frequency.
func (p *PSD) SampleRate() float64 {
	return p.sfreq
}

// Frequencies returns the bin frequencies in Hz produced for inputs
// of length n, from 0 to the Nyquist frequency.
func (p *PSD) Frequencies(n int) ([]float64, error) {
	nfft, err := p.fftSize(n)
	if err != nil {
		return nil, err
	}

	freqs := make([]float64, nfft/2+1)
	for k := range freqs {
		freqs[k] = float64(k) * p.sfreq / float64(nfft)
	}

	return freqs, nil
}

// Fit is a no-op.
func (p *PSD) Fit(x *series.Series) error {
	return nil
}

// Transform returns the periodogram of every channel. The channel
// count is preserved; the time axis becomes the frequency axis.
func (p *PSD) Transform(x *series.Series) (*series.Series, error) {
	nfft, err := p.fftSize(x.Len())
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	coeffs := window.Generate(p.win, x.Len())
	scale := p.scale(coeffs)

	if x.Channels() == 0 {
		return series.New(nfft/2+1, 0), nil
	}

	cols := make([][]float64, x.Channels())
	for c := range cols {
		col, err := p.psdOf(plan, x.Column(c), coeffs, nfft, scale)
		if err != nil {
			return nil, err
		}

		cols[c] = col
	}

	return series.FromColumns(cols)
}

// TransformPanel estimates the PSD of every instance. The result is a
// panel with nfft/2+1 samples per channel.
func (p *PSD) TransformPanel(x *series.Panel) (*series.Panel, error) {
	nfft, err := p.fftSize(x.Len())
	if err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	coeffs := window.Generate(p.win, x.Len())
	scale := p.scale(coeffs)

	out := series.NewPanel(x.Instances(), x.Channels(), nfft/2+1)
	for i := range x.Instances() {
		src := x.Instance(i)
		dst := out.Instance(i)

		for c := range src {
			col, err := p.psdOf(plan, src[c], coeffs, nfft, scale)
			if err != nil {
				return nil, err
			}

			copy(dst[c], col)
		}
	}

	return out, nil
}

// Tags describes the transformer.
func (p *PSD) Tags() transform.Tags {
	return transform.Tags{
		Input:        transform.KindSeries,
		Output:       transform.KindSeries,
		Instancewise: true,
		FitIsEmpty:   true,
	}
}

// fftSize resolves the transform size for an input of length n.
func (p *PSD) fftSize(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyInput
	}

	if p.nfft == 0 {
		return nextPowerOf2(n), nil
	}

	if n > p.nfft {
		return 0, fmt.Errorf("%w: %d > %d", ErrInputLength, n, p.nfft)
	}

	return p.nfft, nil
}

// scale returns the periodogram density normalization 1/(fs*sum(w^2)).
func (p *PSD) scale(coeffs []float64) float64 {
	var sumsq float64
	for _, w := range coeffs {
		sumsq += w * w
	}

	if sumsq == 0 {
		return 0
	}

	return 1 / (p.sfreq * sumsq)
}

func (p *PSD) psdOf(plan *algofft.Plan[complex128], samples, coeffs []float64, nfft int, scale float64) ([]float64, error) {
	windowed, err := window.ApplyCoefficients(samples, coeffs)
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	buf := make([]complex128, nfft)
	for i, v := range windowed {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	bins := nfft/2 + 1

	power := spectrum.Power(buf[:bins])
	for k := 1; k < bins-1; k++ {
		power[k] *= 2
	}

	out := make([]float64, bins)
	vecmath.ScaleBlock(out, power, scale)

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
