// Package filter provides a transformer that band-limits uniformly
// sampled series by delegating to an external filtering backend.
//
// The transformer is a thin adapter. It validates the scalar parameters,
// reorders axes between the time-major series layout and the
// channel-major layout filtering libraries expect, and forwards
// everything else untouched. Filter design and application live behind
// the Backend interface; the algodsp subpackage provides the default
// implementation and registers it under DefaultBackendName:
//
//	import _ "github.com/cwbudde/algo-series/transform/filter/algodsp"
//
// Backend errors pass through Transform unmodified, so callers can match
// them with errors.Is against the backend's sentinel errors.
package filter
