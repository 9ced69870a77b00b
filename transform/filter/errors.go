package filter

import "errors"

// Errors returned by New.
var (
	ErrSampleRate         = errors.New("filter: sample rate must be positive and finite")
	ErrCutoffSign         = errors.New("filter: cutoff frequencies must be positive")
	ErrCutoffOrder        = errors.New("filter: low cutoff must not exceed high cutoff")
	ErrBackendUnavailable = errors.New("filter: no such backend")
)
