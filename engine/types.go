// Package engine implements the deterministic delivery-analysis core:
// word-timing normalization, pause segmentation, metric aggregation and
// rubric scoring. Every function is pure and synchronous; the package does
// no I/O and keeps no state between calls.
package engine

import (
	"fmt"
	"time"
)

// RawWord is one word tuple as produced by the ASR collaborator, before
// normalization. It may be unsorted, overlapping or degenerate.
type RawWord struct {
	Text       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"probability"`
}

// WordSpan is one recognized word with normalized timing. Spans returned by
// Normalize are ordered by start and non-overlapping.
type WordSpan struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Duration returns the span length in seconds.
func (w WordSpan) Duration() float64 { return w.End - w.Start }

// PauseBucket classifies a silence gap by duration.
type PauseBucket int

const (
	BucketNone PauseBucket = iota // below the noise floor, not a countable pause
	BucketShort
	BucketGood
	BucketMedium
	BucketLong
)

var bucketNames = map[PauseBucket]string{
	BucketNone:   "none",
	BucketShort:  "short",
	BucketGood:   "good",
	BucketMedium: "medium",
	BucketLong:   "long",
}

func (b PauseBucket) String() string {
	if s, ok := bucketNames[b]; ok {
		return s
	}
	return "unknown"
}

// MarshalJSON encodes the bucket as its lowercase name so exported reports
// stay readable and stable across implementations.
func (b PauseBucket) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON decodes a lowercase bucket name.
func (b *PauseBucket) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	for k, v := range bucketNames {
		if v == s {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("unknown pause bucket %q", s)
}

// PauseInterval is one classified silence gap between (or around) words.
type PauseInterval struct {
	Start    float64     `json:"start"`
	End      float64     `json:"end"`
	Duration float64     `json:"duration"`
	Bucket   PauseBucket `json:"bucket"`
}

// ProsodyFeatures carries frame-level and scalar acoustic measurements from
// the external prosody collaborator. All fields are optional; empty slices
// and zero scalars degrade the derived metrics instead of failing analysis.
type ProsodyFeatures struct {
	PitchHz            []float64 `json:"pitch_hz"`
	IntensityDB        []float64 `json:"intensity_db"`
	Jitter             float64   `json:"jitter"`
	Shimmer            float64   `json:"shimmer"`
	HNRdB              float64   `json:"hnr_db"`
	RMS                []float64 `json:"rms"`
	TempoBPM           float64   `json:"tempo_bpm"`
	SpectralCentroidHz float64   `json:"spectral_centroid_hz"`
	TotalDurationS     float64   `json:"total_duration_s"`
}

// MetricSet maps metric names to values. Aggregate always populates every
// key in MetricKeys and never emits NaN or infinite values.
type MetricSet map[string]float64

// RubricScores maps the seven rubric dimensions to integer scores in [1,5].
type RubricScores map[string]int

// Report is the immutable result of one analysis run. The caller owns it
// exclusively; the engine keeps no reference after construction.
type Report struct {
	WordSpans   []WordSpan      `json:"word_spans"`
	Pauses      []PauseInterval `json:"pauses"`
	Metrics     MetricSet       `json:"metrics"`
	Rubric      RubricScores    `json:"rubric"`
	GeneratedAt time.Time       `json:"generated_at"`
}
