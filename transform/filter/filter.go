package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-series/series"
	"github.com/cwbudde/algo-series/transform"
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	lowHz   float64
	highHz  float64
	hasLow  bool
	hasHigh bool
	params  Params
	backend Backend
	name    string
}

func defaultConfig() config {
	return config{name: DefaultBackendName}
}

// WithLowCutoffHz sets the lower cutoff frequency in Hz; frequency
// content below it is attenuated. Must be finite.
func WithLowCutoffHz(hz float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("filter: low cutoff must be finite: %f", hz)
		}

		cfg.lowHz = hz
		cfg.hasLow = true

		return nil
	}
}

// WithHighCutoffHz sets the upper cutoff frequency in Hz; frequency
// content above it is attenuated. Must be finite.
func WithHighCutoffHz(hz float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("filter: high cutoff must be finite: %f", hz)
		}

		cfg.highHz = hz
		cfg.hasHigh = true

		return nil
	}
}

// WithParams forwards backend-specific options. The maps are copied at
// construction, so later mutations by the caller have no effect.
func WithParams(p Params) Option {
	return func(cfg *config) error {
		cfg.params = p.Clone()
		return nil
	}
}

// WithBackend injects a backend directly, bypassing the registry.
func WithBackend(b Backend) Option {
	return func(cfg *config) error {
		if b == nil {
			return fmt.Errorf("filter: nil backend")
		}

		cfg.backend = b
		cfg.name = ""

		return nil
	}
}

// WithBackendName selects a registered backend. The lookup happens in
// New, so a missing backend fails construction rather than the first
// Transform.
func WithBackendName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("filter: empty backend name")
		}

		cfg.backend = nil
		cfg.name = name

		return nil
	}
}

// Filter attenuates frequency content of uniformly sampled series
// outside the configured band. It adapts series shapes and forwards all
// signal processing to a Backend; it performs no filter design or
// application of its own.
//
// Filter is stateless across calls: Transform never mutates its input
// and never returns memory aliased to it.
type Filter struct {
	sfreq   float64
	lowHz   float64
	highHz  float64
	hasLow  bool
	hasHigh bool
	params  Params
	backend Backend
	name    string
}

// New constructs a Filter for data sampled at sfreq Hz.
//
// When both cutoffs are set, each must be positive and the low cutoff
// must not exceed the high one. A single cutoff is accepted as given;
// the backend rejects unusable values when Transform runs. A Filter
// without cutoffs is constructible; whether it is usable is likewise the
// backend's decision.
func New(sfreq float64, opts ...Option) (*Filter, error) {
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

	if cfg.hasLow && cfg.hasHigh {
		if cfg.lowHz <= 0 || cfg.highHz <= 0 {
			return nil, fmt.Errorf("%w: low %f, high %f", ErrCutoffSign, cfg.lowHz, cfg.highHz)
		}

		if cfg.lowHz > cfg.highHz {
			return nil, fmt.Errorf("%w: low %f, high %f", ErrCutoffOrder, cfg.lowHz, cfg.highHz)
		}
	}

	backend := cfg.backend
	if backend == nil {
		backend = LookupBackend(cfg.name)
		if backend == nil {
			return nil, fmt.Errorf("%w: %q (registered: %v)", ErrBackendUnavailable, cfg.name, Backends())
		}
	}

	f := &Filter{
		sfreq:   sfreq,
		params:  cfg.params,
		backend: backend,
		name:    cfg.name,
	}

	if cfg.hasLow {
		f.lowHz = cfg.lowHz
		f.hasLow = true
	}

	if cfg.hasHigh {
		f.highHz = cfg.highHz
		f.hasHigh = true
	}

	return f, nil
}

// SampleRate returns the sampling frequency in Hz.
func (f *Filter) SampleRate() float64 {
	return f.sfreq
}

// LowCutoffHz returns the lower cutoff and whether it is set.
func (f *Filter) LowCutoffHz() (float64, bool) {
	return f.lowHz, f.hasLow
}

// HighCutoffHz returns the upper cutoff and whether it is set.
func (f *Filter) HighCutoffHz() (float64, bool) {
	return f.highHz, f.hasHigh
}

// BackendName returns the registry name the backend was resolved under,
// or "" for a directly injected backend.
func (f *Filter) BackendName() string {
	return f.name
}

// Params returns a copy of the forwarded backend options.
func (f *Filter) Params() Params {
	return f.params.Clone()
}

// Fit is a no-op: filtering needs no fitted state. It exists to satisfy
// the transform.Transformer contract.
func (f *Filter) Fit(*series.Series) error {
	return nil
}

// Transform filters one time-major series. The input is transposed into
// the channel-major layout the backend expects, handed off together with
// the configured cutoffs and options, and the result is transposed back,
// so the output has the input's shape.
//
// Backend errors are returned unmodified.
func (f *Filter) Transform(x *series.Series) (*series.Series, error) {
	filtered, err := f.backend.FilterData(x.ColumnMajor(), f.sfreq, f.lowHz, f.highHz, f.params)
	if err != nil {
		return nil, err
	}

	out, err := series.FromColumns(filtered)
	if err != nil {
		return nil, fmt.Errorf("filter: backend returned ragged data: %w", err)
	}

	return out, nil
}

// TransformPanel filters every instance of a panel independently. Panel
// instances are already channel-major, so each one is forwarded without
// axis reordering; the backend receives a private copy, never the
// panel's own memory.
//
// Backend errors are returned unmodified.
func (f *Filter) TransformPanel(x *series.Panel) (*series.Panel, error) {
	out := make([][][]float64, x.Instances())
	for i := range out {
		inst := x.Instance(i)

		data := make([][]float64, len(inst))
		for c, ch := range inst {
			data[c] = append([]float64(nil), ch...)
		}

		filtered, err := f.backend.FilterData(data, f.sfreq, f.lowHz, f.highHz, f.params)
		if err != nil {
			return nil, err
		}

		out[i] = filtered
	}

	p, err := series.FromInstances(out)
	if err != nil {
		return nil, fmt.Errorf("filter: backend returned mismatched shapes: %w", err)
	}

	return p, nil
}

// Tags reports the static capabilities of the filter transformer.
func (f *Filter) Tags() transform.Tags {
	tags := transform.Tags{
		Input:        transform.KindSeries,
		Output:       transform.KindSeries,
		Instancewise: true,
		FitIsEmpty:   true,
	}

	if f.name != "" {
		tags.Requires = []string{f.name}
	}

	return tags
}
