package filter

// Backend applies the actual filtering. Implementations wrap an external
// signal-processing library; this package never designs or applies
// filters itself.
//
// FilterData receives channel-major data: data[c][t] is sample t of
// channel c. A cutoff of 0 means that band edge is absent: lowHz 0
// requests no high-pass edge, highHz 0 no low-pass edge. Implementations
// validate their own inputs and options, must not mutate or retain data
// or p, and return freshly allocated output of the same shape.
type Backend interface {
	FilterData(data [][]float64, sfreq, lowHz, highHz float64, p Params) ([][]float64, error)
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc func(data [][]float64, sfreq, lowHz, highHz float64, p Params) ([][]float64, error)

// FilterData calls fn.
func (fn BackendFunc) FilterData(data [][]float64, sfreq, lowHz, highHz float64, p Params) ([][]float64, error) {
	return fn(data, sfreq, lowHz, highHz, p)
}
