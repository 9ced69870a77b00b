package center

import (
	timestats "github.com/cwbudde/algo-dsp/stats/time"

	"github.com/cwbudde/algo-series/series"
	"github.com/cwbudde/algo-series/transform"
)

// Center subtracts the mean of every channel, leaving each channel
// with zero DC offset. It holds no state.
type Center struct{}

// New returns a Center.
func New() *Center {
	return &Center{}
}

// Fit is a no-op.
func (c *Center) Fit(x *series.Series) error {
	return nil
}

// Transform returns a copy of x with each channel shifted to zero
// mean. The input is not modified.
func (c *Center) Transform(x *series.Series) (*series.Series, error) {
	dc := make([]float64, x.Channels())
	for ch := range dc {
		dc[ch] = timestats.DC(x.Column(ch))
	}

	out := x.Clone()
	for t := range out.Len() {
		row := out.Row(t)
		for ch, m := range dc {
			row[ch] -= m
		}
	}

	return out, nil
}

// TransformPanel centers every channel of every instance
// independently.
func (c *Center) TransformPanel(x *series.Panel) (*series.Panel, error) {
	out := x.Clone()
	for i := range out.Instances() {
		inst := out.Instance(i)
		for _, ch := range inst {
			m := timestats.DC(ch)
			for t := range ch {
				ch[t] -= m
			}
		}
	}

	return out, nil
}

// Tags describes the transformer.
func (c *Center) Tags() transform.Tags {
	return transform.Tags{
		Input:        transform.KindSeries,
		Output:       transform.KindSeries,
		Instancewise: true,
		FitIsEmpty:   true,
	}
}
