// Package taper scales series along the time axis with window
// functions from algo-dsp, commonly applied before spectral analysis
// to reduce leakage from segment edges.
package taper
