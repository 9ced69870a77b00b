// Package algodsp implements the default filtering backend on top of
// the algo-dsp filter design and biquad packages.
//
// Importing the package registers the backend with the filter registry:
//
//	import _ "github.com/cwbudde/algo-series/transform/filter/algodsp"
//
// The backend designs causal IIR cascades. A low cutoff maps to a
// high-pass design, a high cutoff to a low-pass design, and both
// together to a high-pass/low-pass cascade. Options arrive through
// filter.Params under the Param* keys; unknown keys and out-of-range
// values are rejected.
package algodsp
