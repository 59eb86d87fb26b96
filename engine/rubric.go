package engine

import "math"

// The seven rubric dimensions. Each is scored independently on [1,5]; no
// cross-dimension normalization or forced distribution applies.
const (
	DimClarity    = "Clarity"
	DimConfidence = "Confidence"
	DimTone       = "Tone"
	DimPacing     = "Pacing"
	DimEngagement = "Engagement"
	DimCadence    = "Cadence"
	DimFlow       = "Flow"
)

// Dimensions lists every rubric dimension a complete score set must carry.
var Dimensions = []string{
	DimClarity, DimConfidence, DimTone, DimPacing,
	DimEngagement, DimCadence, DimFlow,
}

type scoreFunc func(MetricSet) int

var scorers = map[string]scoreFunc{
	DimClarity:    scoreClarity,
	DimConfidence: scoreConfidence,
	DimTone:       scoreTone,
	DimPacing:     scorePacing,
	DimEngagement: scoreEngagement,
	DimCadence:    scoreCadence,
	DimFlow:       scoreFlow,
}

// Score maps a metric set onto the seven rubric dimensions. Each scoring
// function is pure and total: any valid MetricSet yields an integer in
// [1,5], extreme values floor to 1 or ceil to 5.
func Score(m MetricSet) RubricScores {
	out := make(RubricScores, len(Dimensions))
	for _, dim := range Dimensions {
		out[dim] = scorers[dim](m)
	}
	return out
}

// bands maps v onto 1..5 against four descending cutoffs: v >= cuts[0] is 5,
// v >= cuts[1] is 4, and so on down to 1.
func bands(v float64, cuts [4]float64) int {
	switch {
	case v >= cuts[0]:
		return 5
	case v >= cuts[1]:
		return 4
	case v >= cuts[2]:
		return 3
	case v >= cuts[3]:
		return 2
	default:
		return 1
	}
}

// scaled maps a [0,1] quality value onto 1..5 linearly.
func scaled(v float64) int {
	if math.IsNaN(v) {
		return 1
	}
	v = clamp(v, 0, 1)
	return 1 + int(math.Min(4, v*4))
}

// Voice quality proxy: jitter/shimmer penalized, energy mildly rewarded.
func scoreClarity(m MetricSet) int {
	return bands(m[MetricClarityIndex], [4]float64{1.2, 0.9, 0.6, 0.3})
}

// Heavy silence reads as hesitation; dynamic intensity reads as assurance.
func scoreConfidence(m MetricSet) int {
	v := 1.1 - 1.8*m[MetricPauseRatio] + 0.03*m[MetricIntensityStddevDB]
	return scaled(v)
}

// Pitch and loudness variability together.
func scoreTone(m MetricSet) int {
	return bands(m[MetricToneVariability], [4]float64{60, 40, 25, 12})
}

// U-shaped in words-per-minute: both rushing and dragging lose points.
func scorePacing(m MetricSet) int {
	return bands(m[MetricPacingScore], [4]float64{0.95, 0.75, 0.5, 0.25})
}

// Fillers penalized, expressive pitch range rewarded (capped at 150 Hz).
func scoreEngagement(m MetricSet) int {
	v := 1.1 - 2.0*m[MetricFillerRatio] + math.Min(m[MetricPitchRangeHz], 150)/300
	return scaled(v)
}

// Rewards well-placed pauses, penalizes choppy or stalled delivery.
func scoreCadence(m MetricSet) int {
	v := math.Max(0, 1-1.2*m[MetricPauseRatio]) +
		0.5*m[MetricGoodPauseRatio] - 0.7*m[MetricBadPauseRatio]
	return bands(v, [4]float64{1.0, 0.75, 0.5, 0.25})
}

// Blends pacing with pause quality.
func scoreFlow(m MetricSet) int {
	v := m[MetricPacingScore] + 0.3*m[MetricGoodPauseRatio] - 0.4*m[MetricBadPauseRatio]
	return bands(v, [4]float64{1.1, 0.85, 0.6, 0.35})
}
