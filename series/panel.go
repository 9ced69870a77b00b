package series

// Panel holds a collection of equally shaped multichannel instances in
// channel-major order: element (i, c, t) is sample t of channel c of
// instance i.
type Panel struct {
	data     [][][]float64
	channels int
	samples  int
}

// NewPanel returns a zero-filled Panel with the given number of
// instances, channels, and time points per channel. Negative dimensions
// are treated as zero.
func NewPanel(instances, channels, samples int) *Panel {
	if instances < 0 {
		instances = 0
	}

	if channels < 0 {
		channels = 0
	}

	if samples < 0 {
		samples = 0
	}

	data := make([][][]float64, instances)
	for i := range data {
		inst := make([][]float64, channels)
		flat := make([]float64, channels*samples)
		for c := range inst {
			inst[c] = flat[c*samples : (c+1)*samples : (c+1)*samples]
		}

		data[i] = inst
	}

	return &Panel{data: data, channels: channels, samples: samples}
}

// FromInstances wraps channel-major data without copying: data[i][c][t]
// is sample t of channel c of instance i. Mutations to data are visible
// through the Panel and vice versa. Every instance must have the same
// channel count and per-channel sample count.
func FromInstances(data [][][]float64) (*Panel, error) {
	channels, samples := 0, 0
	if len(data) > 0 {
		channels = len(data[0])
		if channels > 0 {
			samples = len(data[0][0])
		}
	}

	for _, inst := range data {
		if len(inst) != channels {
			return nil, ErrShapeMismatch
		}

		for _, ch := range inst {
			if len(ch) != samples {
				return nil, ErrShapeMismatch
			}
		}
	}

	return &Panel{data: data, channels: channels, samples: samples}, nil
}

// Instances returns the number of instances.
func (p *Panel) Instances() int {
	return len(p.data)
}

// Channels returns the number of channels per instance.
func (p *Panel) Channels() int {
	return p.channels
}

// Len returns the number of time points per channel.
func (p *Panel) Len() int {
	return p.samples
}

// At returns the sample at instance i, channel c, and time index t.
func (p *Panel) At(i, c, t int) float64 {
	return p.data[i][c][t]
}

// Set stores v at instance i, channel c, and time index t.
func (p *Panel) Set(i, c, t int, v float64) {
	p.data[i][c][t] = v
}

// Instance returns the channel-major data of instance i.
// The slices alias the underlying storage.
func (p *Panel) Instance(i int) [][]float64 {
	return p.data[i]
}

// Data returns the underlying channel-major storage without copying.
// Mutations through the returned slices are visible in the Panel.
func (p *Panel) Data() [][][]float64 {
	return p.data
}

// SeriesAt returns instance i as a time-major Series copy.
func (p *Panel) SeriesAt(i int) *Series {
	out := New(p.samples, p.channels)
	for c, ch := range p.data[i] {
		for t, v := range ch {
			out.rows[t][c] = v
		}
	}

	return out
}

// Clone returns a deep copy of the Panel.
func (p *Panel) Clone() *Panel {
	out := NewPanel(len(p.data), p.channels, p.samples)
	for i, inst := range p.data {
		for c, ch := range inst {
			copy(out.data[i][c], ch)
		}
	}

	return out
}
