package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteRubric reports a rubric score set missing a dimension. Score
// always emits all seven, so hitting this indicates an internal defect.
var ErrIncompleteRubric = errors.New("incomplete rubric")

// Assemble packages the pipeline outputs into a Report. It recomputes
// nothing; the only check is that every rubric dimension is present. The
// returned Report owns fresh copies of the slices, so the engine holds no
// reference to it afterwards.
func Assemble(spans []WordSpan, pauses []PauseInterval, metrics MetricSet, rubric RubricScores) (Report, error) {
	for _, dim := range Dimensions {
		if _, ok := rubric[dim]; !ok {
			return Report{}, fmt.Errorf("%w: missing %s", ErrIncompleteRubric, dim)
		}
	}
	r := Report{
		WordSpans:   append([]WordSpan(nil), spans...),
		Pauses:      append([]PauseInterval(nil), pauses...),
		Metrics:     make(MetricSet, len(metrics)),
		Rubric:      make(RubricScores, len(rubric)),
		GeneratedAt: time.Now().UTC(),
	}
	for k, v := range metrics {
		r.Metrics[k] = v
	}
	for k, v := range rubric {
		r.Rubric[k] = v
	}
	return r, nil
}
