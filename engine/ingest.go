package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidTiming reports word timing input that is empty, or degenerate to
// the point that nothing survives normalization. Analysis cannot proceed.
var ErrInvalidTiming = errors.New("invalid word timing")

// Normalize validates and cleans a raw ASR word sequence into an ordered,
// non-overlapping slice of WordSpans:
//
//   - stable sort by start time (ties keep input order)
//   - end times running past the next word's start are clipped to it
//   - entries with empty text and no duration are dropped
//   - confidences are clamped to [0,1]
//
// The input slice is never mutated.
func Normalize(raw []RawWord) ([]WordSpan, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty word sequence", ErrInvalidTiming)
	}

	sorted := make([]RawWord, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	spans := make([]WordSpan, 0, len(sorted))
	for _, w := range sorted {
		text := strings.TrimSpace(w.Text)
		end := w.End
		if end < w.Start {
			end = w.Start
		}
		if text == "" && end-w.Start <= 0 {
			continue
		}
		conf := w.Confidence
		if conf < 0 {
			conf = 0
		} else if conf > 1 {
			conf = 1
		}
		spans = append(spans, WordSpan{Text: text, Start: w.Start, End: end, Confidence: conf})
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("%w: all %d entries degenerate", ErrInvalidTiming, len(raw))
	}

	// Sorted by start, so clipping to the successor start keeps start <= end.
	for i := 0; i < len(spans)-1; i++ {
		if spans[i].End > spans[i+1].Start {
			spans[i].End = spans[i+1].Start
		}
	}
	return spans, nil
}
