package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-series/series"
)

// Tone generates a deterministic sine wave.
func Tone(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ToneSeries generates a multichannel series where channel c carries a
// sine at freqs[c] Hz.
func ToneSeries(sampleRate float64, freqs []float64, amplitude float64, samples int) *series.Series {
	cols := make([][]float64, len(freqs))
	for c, freq := range freqs {
		cols[c] = Tone(freq, sampleRate, amplitude, samples)
	}

	s, err := series.FromColumns(cols)
	if err != nil {
		panic("testutil: tone series: " + err.Error())
	}
	return s
}

// NoiseSeries generates a seeded multichannel noise series.
func NoiseSeries(seed int64, amplitude float64, samples, channels int) *series.Series {
	s := series.New(samples, channels)
	rng := rand.New(rand.NewSource(seed))
	for t := range samples {
		for c := range channels {
			s.Set(t, c, (rng.Float64()*2-1)*amplitude)
		}
	}
	return s
}

// ConstantSeries generates a series with every sample set to value.
func ConstantSeries(value float64, samples, channels int) *series.Series {
	s := series.New(samples, channels)
	for t := range samples {
		for c := range channels {
			s.Set(t, c, value)
		}
	}
	return s
}
