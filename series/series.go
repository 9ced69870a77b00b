package series

// Series holds one uniformly sampled multichannel signal in time-major
// order: element (t, c) is sample t of channel c.
type Series struct {
	rows     [][]float64
	channels int
}

// New returns a zero-filled Series with the given number of time points
// and channels. Negative dimensions are treated as zero.
func New(samples, channels int) *Series {
	if samples < 0 {
		samples = 0
	}

	if channels < 0 {
		channels = 0
	}

	rows := make([][]float64, samples)
	flat := make([]float64, samples*channels)
	for t := range rows {
		rows[t] = flat[t*channels : (t+1)*channels : (t+1)*channels]
	}

	return &Series{rows: rows, channels: channels}
}

// FromRows wraps time-major data without copying: rows[t][c] is sample t
// of channel c. Mutations to rows are visible through the Series and vice
// versa. All rows must have the same length.
func FromRows(rows [][]float64) (*Series, error) {
	channels := 0
	if len(rows) > 0 {
		channels = len(rows[0])
	}

	for _, row := range rows {
		if len(row) != channels {
			return nil, ErrRagged
		}
	}

	return &Series{rows: rows, channels: channels}, nil
}

// FromColumns builds a Series from channel-major data: cols[c][t] is
// sample t of channel c. The data is copied into time-major order, so
// the result shares no memory with cols. All columns must have the same
// length.
func FromColumns(cols [][]float64) (*Series, error) {
	samples := 0
	if len(cols) > 0 {
		samples = len(cols[0])
	}

	for _, col := range cols {
		if len(col) != samples {
			return nil, ErrRagged
		}
	}

	out := New(samples, len(cols))
	for c, col := range cols {
		for t, v := range col {
			out.rows[t][c] = v
		}
	}

	return out, nil
}

// Len returns the number of time points.
func (s *Series) Len() int {
	return len(s.rows)
}

// Channels returns the number of channels.
func (s *Series) Channels() int {
	return s.channels
}

// At returns the sample at time index t and channel c.
func (s *Series) At(t, c int) float64 {
	return s.rows[t][c]
}

// Set stores v at time index t and channel c.
func (s *Series) Set(t, c int, v float64) {
	s.rows[t][c] = v
}

// Row returns the samples of all channels at time index t.
// The slice aliases the underlying storage.
func (s *Series) Row(t int) []float64 {
	return s.rows[t]
}

// Rows returns the underlying time-major storage without copying.
// Mutations through the returned slices are visible in the Series.
func (s *Series) Rows() [][]float64 {
	return s.rows
}

// Column returns a copy of channel c across all time points.
func (s *Series) Column(c int) []float64 {
	out := make([]float64, len(s.rows))
	for t, row := range s.rows {
		out[t] = row[c]
	}

	return out
}

// ColumnMajor returns a channel-major copy of the data: element (c, t)
// of the result is sample t of channel c. The result shares no memory
// with the Series.
func (s *Series) ColumnMajor() [][]float64 {
	samples := len(s.rows)

	out := make([][]float64, s.channels)
	flat := make([]float64, s.channels*samples)
	for c := range out {
		col := flat[c*samples : (c+1)*samples : (c+1)*samples]
		for t, row := range s.rows {
			col[t] = row[c]
		}

		out[c] = col
	}

	return out
}

// Clone returns a deep copy of the Series.
func (s *Series) Clone() *Series {
	out := New(len(s.rows), s.channels)
	for t, row := range s.rows {
		copy(out.rows[t], row)
	}

	return out
}
