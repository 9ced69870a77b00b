package algodsp

import (
	"errors"
	"math"
	"testing"

	timestats "github.com/cwbudde/algo-dsp/stats/time"

	"github.com/cwbudde/algo-series/internal/testutil"
	"github.com/cwbudde/algo-series/transform/filter"
)

func toneData(sampleRate float64, freqs []float64, length int) [][]float64 {
	data := make([][]float64, len(freqs))
	for i, f := range freqs {
		data[i] = testutil.Tone(f, sampleRate, 1, length)
	}

	return data
}

func cloneData(data [][]float64) [][]float64 {
	out := make([][]float64, len(data))
	for i, ch := range data {
		out[i] = make([]float64, len(ch))
		copy(out[i], ch)
	}

	return out
}

func TestFilterData_Validation(t *testing.T) {
	valid := [][]float64{testutil.Noise(1, 1, 64)}

	tests := []struct {
		name    string
		data    [][]float64
		sfreq   float64
		low     float64
		high    float64
		params  filter.Params
		wantErr error
	}{
		{"zero sample rate", valid, 0, 0, 50, filter.Params{}, ErrSampleRate},
		{"negative sample rate", valid, -250, 0, 50, filter.Params{}, ErrSampleRate},
		{"nan sample rate", valid, math.NaN(), 0, 50, filter.Params{}, ErrSampleRate},
		{"inf sample rate", valid, math.Inf(1), 0, 50, filter.Params{}, ErrSampleRate},
		{"nil data", nil, 1000, 0, 50, filter.Params{}, ErrEmptyData},
		{"empty channel", [][]float64{{}}, 1000, 0, 50, filter.Params{}, ErrEmptyData},
		{"no cutoffs", valid, 1000, 0, 0, filter.Params{}, ErrNoCutoff},
		{"negative low", valid, 1000, -5, 0, filter.Params{}, ErrCutoffRange},
		{"low at nyquist", valid, 1000, 500, 0, filter.Params{}, ErrCutoffRange},
		{"high above nyquist", valid, 1000, 0, 600, filter.Params{}, ErrCutoffRange},
		{"nan high", valid, 1000, 0, math.NaN(), filter.Params{}, ErrCutoffRange},
		{"low equals high", valid, 1000, 50, 50, filter.Params{}, ErrCutoffRange},
		{"low above high", valid, 1000, 100, 20, filter.Params{}, ErrCutoffRange},
		{
			"unknown string option", valid, 1000, 0, 50,
			filter.Params{Str: map[string]string{"mode": "zero-phase"}},
			ErrUnknownParam,
		},
		{
			"unknown numeric option", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{"q": 0.7}},
			ErrUnknownParam,
		},
		{
			"unknown family", valid, 1000, 0, 50,
			filter.Params{Str: map[string]string{ParamFamily: "brickwall"}},
			ErrParamValue,
		},
		{
			"zero order", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamOrder: 0}},
			ErrParamValue,
		},
		{
			"fractional order", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamOrder: 2.5}},
			ErrParamValue,
		},
		{
			"order beyond limit", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamOrder: 17}},
			ErrParamValue,
		},
		{
			"nan order", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamOrder: math.NaN()}},
			ErrParamValue,
		},
		{
			"negative ripple", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamRippleDB: -1}},
			ErrParamValue,
		},
		{
			"zero stopband", valid, 1000, 0, 50,
			filter.Params{Num: map[string]float64{ParamStopbandDB: 0}},
			ErrParamValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Backend{}.FilterData(tt.data, tt.sfreq, tt.low, tt.high, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FilterData() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_OptionValidation(t *testing.T) {
	if _, err := New(WithDefaultOrder(0)); !errors.Is(err, ErrParamValue) {
		t.Errorf("order 0: got %v, want ErrParamValue", err)
	}

	if _, err := New(WithDefaultOrder(17)); !errors.Is(err, ErrParamValue) {
		t.Errorf("order 17: got %v, want ErrParamValue", err)
	}

	if _, err := New(WithDefaultFamily("brickwall")); !errors.Is(err, ErrParamValue) {
		t.Errorf("unknown family: got %v, want ErrParamValue", err)
	}

	if _, err := New(WithDefaultFamily(FamilyBessel), WithDefaultOrder(6)); err != nil {
		t.Errorf("valid options: got %v, want nil", err)
	}
}

func TestNew_DefaultsApplyWhenParamsOmit(t *testing.T) {
	const sampleRate = 1000

	gentle, err := New(WithDefaultOrder(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := toneData(sampleRate, []float64{400}, 4096)

	fromGentle, err := gentle.FilterData(data, sampleRate, 0, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData(defaults) error = %v", err)
	}

	fromStock, err := Backend{}.FilterData(data, sampleRate, 0, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData(stock) error = %v", err)
	}

	if g, s := timestats.RMS(fromGentle[0]), timestats.RMS(fromStock[0]); g <= s {
		t.Errorf("order 1 stopband RMS = %f, want above stock order 4 RMS %f", g, s)
	}

	// Explicit request options still win over configured defaults.
	explicit, err := gentle.FilterData(data, sampleRate, 0, 100,
		filter.Params{Num: map[string]float64{ParamOrder: 4}})
	if err != nil {
		t.Fatalf("FilterData(explicit order) error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, explicit[0], fromStock[0], 0)
}

func TestFilterData_BesselOrderLimit(t *testing.T) {
	data := [][]float64{testutil.Noise(2, 1, 64)}
	params := filter.Params{
		Str: map[string]string{ParamFamily: FamilyBessel},
		Num: map[string]float64{ParamOrder: 12},
	}

	_, err := Backend{}.FilterData(data, 1000, 0, 50, params)
	if !errors.Is(err, ErrDesign) {
		t.Fatalf("FilterData() error = %v, want %v", err, ErrDesign)
	}
}

func TestFilterData_PreservesShapeAndInput(t *testing.T) {
	data := [][]float64{
		testutil.Noise(3, 1, 257),
		testutil.Noise(4, 1, 257),
		testutil.Noise(5, 1, 257),
	}
	orig := cloneData(data)

	out, err := Backend{}.FilterData(data, 1000, 1, 40, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	if len(out) != len(data) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(data))
	}

	for i := range out {
		if len(out[i]) != len(data[i]) {
			t.Fatalf("len(out[%d]) = %d, want %d", i, len(out[i]), len(data[i]))
		}

		testutil.RequireFinite(t, out[i])

		out[i][0] = math.Inf(1)
	}

	for i := range data {
		testutil.RequireSliceNearlyEqual(t, data[i], orig[i], 0)
	}
}

func TestFilterData_LowPassAttenuatesHighBand(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{5, 400}, 4096)

	out, err := Backend{}.FilterData(data, sampleRate, 0, 50, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	if rms := timestats.RMS(out[0]); rms < 0.5 {
		t.Errorf("5 Hz tone RMS after low-pass = %f, want > 0.5", rms)
	}

	if rms := timestats.RMS(out[1]); rms > 0.1 {
		t.Errorf("400 Hz tone RMS after low-pass = %f, want < 0.1", rms)
	}
}

func TestFilterData_HighPassAttenuatesLowBand(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{5, 400}, 4096)

	out, err := Backend{}.FilterData(data, sampleRate, 100, 0, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	if rms := timestats.RMS(out[0]); rms > 0.1 {
		t.Errorf("5 Hz tone RMS after high-pass = %f, want < 0.1", rms)
	}

	if rms := timestats.RMS(out[1]); rms < 0.5 {
		t.Errorf("400 Hz tone RMS after high-pass = %f, want > 0.5", rms)
	}
}

func TestFilterData_BandPassKeepsMidBand(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{2, 50, 400}, 4096)

	out, err := Backend{}.FilterData(data, sampleRate, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	if rms := timestats.RMS(out[0]); rms > 0.1 {
		t.Errorf("2 Hz tone RMS after band-pass = %f, want < 0.1", rms)
	}

	if rms := timestats.RMS(out[1]); rms < 0.5 {
		t.Errorf("50 Hz tone RMS after band-pass = %f, want > 0.5", rms)
	}

	if rms := timestats.RMS(out[2]); rms > 0.1 {
		t.Errorf("400 Hz tone RMS after band-pass = %f, want < 0.1", rms)
	}
}

func TestFilterData_Families(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{2, 50, 400}, 4096)

	families := []string{
		FamilyButterworth,
		FamilyChebyshev1,
		FamilyChebyshev2,
		FamilyBessel,
		FamilyElliptic,
	}

	for _, family := range families {
		t.Run(family, func(t *testing.T) {
			params := filter.Params{Str: map[string]string{ParamFamily: family}}

			out, err := Backend{}.FilterData(data, sampleRate, 20, 100, params)
			if err != nil {
				t.Fatalf("FilterData() error = %v", err)
			}

			for i := range out {
				testutil.RequireFinite(t, out[i])
			}

			lowRMS := timestats.RMS(out[0])
			passRMS := timestats.RMS(out[1])
			highRMS := timestats.RMS(out[2])

			if lowRMS > 0.15 {
				t.Errorf("2 Hz tone RMS = %f, want < 0.15", lowRMS)
			}

			if passRMS < 0.35 {
				t.Errorf("50 Hz tone RMS = %f, want > 0.35", passRMS)
			}

			if highRMS > 0.15 {
				t.Errorf("400 Hz tone RMS = %f, want < 0.15", highRMS)
			}
		})
	}
}

func TestFilterData_OrderControlsRolloff(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{400}, 4096)

	gentle, err := Backend{}.FilterData(data, sampleRate, 0, 100,
		filter.Params{Num: map[string]float64{ParamOrder: 2}})
	if err != nil {
		t.Fatalf("FilterData(order 2) error = %v", err)
	}

	steep, err := Backend{}.FilterData(data, sampleRate, 0, 100,
		filter.Params{Num: map[string]float64{ParamOrder: 8}})
	if err != nil {
		t.Fatalf("FilterData(order 8) error = %v", err)
	}

	gentleRMS := timestats.RMS(gentle[0])
	steepRMS := timestats.RMS(steep[0])

	if gentleRMS > 0.3 {
		t.Errorf("order 2 stopband RMS = %f, want < 0.3", gentleRMS)
	}

	if steepRMS >= gentleRMS {
		t.Errorf("order 8 stopband RMS = %f, want below order 2 RMS %f", steepRMS, gentleRMS)
	}
}

func TestFilterData_OddOrder(t *testing.T) {
	const sampleRate = 1000

	data := toneData(sampleRate, []float64{50, 400}, 4096)

	out, err := Backend{}.FilterData(data, sampleRate, 20, 100,
		filter.Params{Num: map[string]float64{ParamOrder: 3}})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	if rms := timestats.RMS(out[0]); rms < 0.5 {
		t.Errorf("50 Hz tone RMS = %f, want > 0.5", rms)
	}

	if rms := timestats.RMS(out[1]); rms > 0.15 {
		t.Errorf("400 Hz tone RMS = %f, want < 0.15", rms)
	}
}

func TestFilterData_ChannelsIndependent(t *testing.T) {
	first := testutil.Noise(10, 1, 512)
	second := testutil.Noise(11, 1, 512)

	joint, err := Backend{}.FilterData([][]float64{first, second}, 1000, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData(joint) error = %v", err)
	}

	solo0, err := Backend{}.FilterData([][]float64{first}, 1000, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData(first) error = %v", err)
	}

	solo1, err := Backend{}.FilterData([][]float64{second}, 1000, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData(second) error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, joint[0], solo0[0], 0)
	testutil.RequireSliceNearlyEqual(t, joint[1], solo1[0], 0)
}

func TestFilterData_FreshStatePerCall(t *testing.T) {
	data := [][]float64{testutil.Noise(12, 1, 512)}

	first, err := Backend{}.FilterData(data, 1000, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	second, err := Backend{}.FilterData(data, 1000, 20, 100, filter.Params{})
	if err != nil {
		t.Fatalf("FilterData() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, second[0], first[0], 0)
}

func BenchmarkFilterData(b *testing.B) {
	benchmarks := []struct {
		name     string
		channels int
	}{
		{"1ch", 1},
		{"8ch", 8},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			data := make([][]float64, bm.channels)
			for i := range data {
				data[i] = testutil.Noise(int64(i+1), 1, 4096)
			}

			b.ReportAllocs()

			for b.Loop() {
				if _, err := Backend{}.FilterData(data, 1000, 20, 100, filter.Params{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
