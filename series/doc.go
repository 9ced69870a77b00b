// Package series provides containers for uniformly sampled multichannel
// signals: Series for a single time-major recording and Panel for a
// collection of equally shaped channel-major instances. Transformers in
// this module accept these types; the raw [][]float64 accessors bridge to
// DSP functions that operate on plain slices.
package series
