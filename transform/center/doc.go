// Package center removes the per-channel mean from series, a common
// first step before filtering or spectral estimation.
package center
