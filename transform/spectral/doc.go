// Package spectral estimates power spectral densities of series. The
// output of a PSD is itself a series whose time axis holds frequency
// bins from DC to Nyquist, so spectral estimates compose with the
// other transformers.
package spectral
