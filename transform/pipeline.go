package transform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-series/series"
)

// Errors returned by Pipeline.
var (
	ErrPanelUnsupported = errors.New("transform: transformer does not accept panels")
	ErrEmptyPipeline    = errors.New("transform: pipeline needs at least one stage")
	ErrNilStage         = errors.New("transform: nil stage")
)

// Pipeline chains transformers in order: the output of each stage is the
// input of the next. Pipeline itself satisfies PanelTransformer, so
// pipelines compose.
type Pipeline struct {
	stages []Transformer
}

// NewPipeline creates a pipeline over the given stages. At least one
// stage is required and none may be nil.
func NewPipeline(stages ...Transformer) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrEmptyPipeline
	}

	for i, stage := range stages {
		if stage == nil {
			return nil, fmt.Errorf("%w: stage %d", ErrNilStage, i)
		}
	}

	return &Pipeline{stages: append([]Transformer(nil), stages...)}, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stage returns the i-th stage.
func (p *Pipeline) Stage(i int) Transformer {
	return p.stages[i]
}

// Fit fits every stage in order, feeding each stage the output of the
// stages before it.
func (p *Pipeline) Fit(x *series.Series) error {
	cur := x
	for i, stage := range p.stages {
		if err := stage.Fit(cur); err != nil {
			return fmt.Errorf("transform: fit stage %d: %w", i, err)
		}

		if i == len(p.stages)-1 {
			break
		}

		next, err := stage.Transform(cur)
		if err != nil {
			return fmt.Errorf("transform: fit stage %d: %w", i, err)
		}

		cur = next
	}

	return nil
}

// Transform runs the series through every stage in order.
func (p *Pipeline) Transform(x *series.Series) (*series.Series, error) {
	if len(p.stages) == 0 {
		return x.Clone(), nil
	}

	cur := x
	for i, stage := range p.stages {
		next, err := stage.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("transform: stage %d: %w", i, err)
		}

		cur = next
	}

	return cur, nil
}

// TransformPanel runs the panel through every stage in order. Every
// stage must implement PanelTransformer.
func (p *Pipeline) TransformPanel(x *series.Panel) (*series.Panel, error) {
	if len(p.stages) == 0 {
		return x.Clone(), nil
	}

	cur := x
	for i, stage := range p.stages {
		pt, ok := stage.(PanelTransformer)
		if !ok {
			return nil, fmt.Errorf("%w: stage %d", ErrPanelUnsupported, i)
		}

		next, err := pt.TransformPanel(cur)
		if err != nil {
			return nil, fmt.Errorf("transform: stage %d: %w", i, err)
		}

		cur = next
	}

	return cur, nil
}

// Tags reports the aggregated capabilities of the pipeline: the input
// kind of the first stage, the output kind of the last, and the
// conjunction (respectively union) of the stage properties.
func (p *Pipeline) Tags() Tags {
	tags := Tags{
		Input:        KindSeries,
		Output:       KindSeries,
		Instancewise: true,
		FitIsEmpty:   true,
	}

	for i, stage := range p.stages {
		st := stage.Tags()
		if i == 0 {
			tags.Input = st.Input
		}

		tags.Output = st.Output
		tags.Instancewise = tags.Instancewise && st.Instancewise
		tags.FitIsEmpty = tags.FitIsEmpty && st.FitIsEmpty
		tags.UsesLabels = tags.UsesLabels || st.UsesLabels
		tags.Requires = append(tags.Requires, st.Requires...)
	}

	return tags
}
