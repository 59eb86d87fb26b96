package engine

import "math"

// Metric names. Aggregate populates every one of these keys on every call.
const (
	MetricWordsPerMinute     = "words_per_minute"
	MetricWordCount          = "word_count"
	MetricSpeakingDurationS  = "speaking_duration_s"
	MetricPauseCountShort    = "pause_count_short"
	MetricPauseCountGood     = "pause_count_good"
	MetricPauseCountMedium   = "pause_count_medium"
	MetricPauseCountLong     = "pause_count_long"
	MetricPauseTotal         = "pause_total"
	MetricPauseRatio         = "pause_ratio"
	MetricGoodPauseRatio     = "good_pause_ratio"
	MetricBadPauseRatio      = "bad_pause_ratio"
	MetricPausesPerMinute    = "pauses_per_minute"
	MetricSyllablesPerSecond = "syllables_per_second"
	MetricFillerCount        = "filler_count"
	MetricFillerRatio        = "filler_ratio"
	MetricPitchMeanHz        = "pitch_mean_hz"
	MetricPitchStddevHz      = "pitch_stddev_hz"
	MetricPitchRangeHz       = "pitch_range_hz"
	MetricIntensityMeanDB    = "intensity_mean_db"
	MetricIntensityStddevDB  = "intensity_stddev_db"
	MetricJitter             = "jitter"
	MetricShimmer            = "shimmer"
	MetricHNRdB              = "hnr_db"
	MetricRMSMean            = "rms_mean"
	MetricRMSStddev          = "rms_stddev"
	MetricTempoBPM           = "tempo_bpm"
	MetricSpectralCentroidHz = "spectral_centroid_hz"
	MetricClarityIndex       = "clarity_index"
	MetricToneVariability    = "tone_variability"
	MetricPacingScore        = "pacing_score"
)

// MetricKeys enumerates every key present in an aggregated MetricSet.
var MetricKeys = []string{
	MetricWordsPerMinute, MetricWordCount, MetricSpeakingDurationS,
	MetricPauseCountShort, MetricPauseCountGood, MetricPauseCountMedium,
	MetricPauseCountLong, MetricPauseTotal, MetricPauseRatio,
	MetricGoodPauseRatio, MetricBadPauseRatio, MetricPausesPerMinute,
	MetricSyllablesPerSecond, MetricFillerCount, MetricFillerRatio,
	MetricPitchMeanHz, MetricPitchStddevHz, MetricPitchRangeHz,
	MetricIntensityMeanDB, MetricIntensityStddevDB,
	MetricJitter, MetricShimmer, MetricHNRdB,
	MetricRMSMean, MetricRMSStddev, MetricTempoBPM, MetricSpectralCentroidHz,
	MetricClarityIndex, MetricToneVariability, MetricPacingScore,
}

// WPMBand is the target conversational speaking-rate band. Rates inside the
// band score a full pacing score; the score falls off linearly outside.
type WPMBand struct {
	Low  float64 `mapstructure:"low" yaml:"low"`
	High float64 `mapstructure:"high" yaml:"high"`
}

// DefaultWPMBand targets comprehension-friendly presentation speech.
func DefaultWPMBand() WPMBand { return WPMBand{Low: 140, High: 170} }

// Disfluency tokens counted toward the filler metrics.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "erm": true, "er": true,
	"like": true, "you": true, "know": true,
	"sort": true, "of": true, "kind": true,
}

// Aggregate combines word spans, classified pauses and prosodic features
// into the full metric set. Every key in MetricKeys is present in the
// result; missing prosodic input degrades the corresponding metrics to their
// documented zero defaults rather than failing.
func Aggregate(spans []WordSpan, pauses []PauseInterval, prosody ProsodyFeatures, band WPMBand, syllables SyllableEstimator) MetricSet {
	if syllables == nil {
		syllables = EstimateSyllables
	}
	m := make(MetricSet, len(MetricKeys))

	// Timing. Speaking duration is the analyzed span minus pause time; the
	// analyzed span is the signal duration when known, else first start to
	// last end.
	var totalSpan, pauseSum float64
	if prosody.TotalDurationS > 0 {
		totalSpan = prosody.TotalDurationS
	} else if len(spans) > 0 {
		totalSpan = spans[len(spans)-1].End - spans[0].Start
	}
	counts := map[PauseBucket]float64{}
	for _, p := range pauses {
		pauseSum += p.Duration
		counts[p.Bucket]++
	}
	speaking := totalSpan - pauseSum
	if speaking < 0 {
		speaking = 0
	}
	m[MetricSpeakingDurationS] = speaking

	wordCount := float64(len(spans))
	m[MetricWordCount] = wordCount
	if speaking > 0 {
		m[MetricWordsPerMinute] = wordCount / (speaking / 60)
	}

	// Pause shape.
	m[MetricPauseCountShort] = counts[BucketShort]
	m[MetricPauseCountGood] = counts[BucketGood]
	m[MetricPauseCountMedium] = counts[BucketMedium]
	m[MetricPauseCountLong] = counts[BucketLong]
	total := counts[BucketShort] + counts[BucketGood] + counts[BucketMedium] + counts[BucketLong]
	m[MetricPauseTotal] = total
	if prosody.TotalDurationS > 0 {
		m[MetricPauseRatio] = pauseSum / prosody.TotalDurationS
	}
	if total > 0 {
		m[MetricGoodPauseRatio] = counts[BucketGood] / total
		m[MetricBadPauseRatio] = (counts[BucketShort] + counts[BucketLong]) / total
	}
	if speaking > 0 {
		m[MetricPausesPerMinute] = total / (speaking / 60)
	}

	// Transcript texture.
	var syllableCount, fillerCount float64
	for _, s := range spans {
		for _, tok := range tokenize(s.Text) {
			syllableCount += float64(syllables(tok))
			if fillerWords[tok] {
				fillerCount++
			}
		}
	}
	if speaking > 0 {
		m[MetricSyllablesPerSecond] = syllableCount / speaking
	}
	m[MetricFillerCount] = fillerCount
	if wordCount > 0 {
		m[MetricFillerRatio] = fillerCount / wordCount
	}

	// Prosody. Unvoiced (zero or negative) pitch samples carry no frequency
	// information and are excluded.
	pitch := filterPositive(prosody.PitchHz)
	m[MetricPitchMeanHz] = mean(pitch)
	m[MetricPitchStddevHz] = stddev(pitch)
	m[MetricPitchRangeHz] = valueRange(pitch)
	intensity := filterFinite(prosody.IntensityDB)
	m[MetricIntensityMeanDB] = mean(intensity)
	m[MetricIntensityStddevDB] = stddev(intensity)
	rms := filterFinite(prosody.RMS)
	m[MetricRMSMean] = mean(rms)
	m[MetricRMSStddev] = stddev(rms)
	m[MetricJitter] = math.Max(0, prosody.Jitter)
	m[MetricShimmer] = math.Max(0, prosody.Shimmer)
	m[MetricHNRdB] = prosody.HNRdB
	m[MetricTempoBPM] = math.Max(0, prosody.TempoBPM)
	m[MetricSpectralCentroidHz] = math.Max(0, prosody.SpectralCentroidHz)

	// Composite indices feeding the rubric.
	m[MetricClarityIndex] = math.Max(0, 1-3.5*m[MetricJitter]-2.5*m[MetricShimmer]) * (1 + 0.05*m[MetricRMSMean])
	m[MetricToneVariability] = m[MetricPitchStddevHz] + 0.6*m[MetricIntensityStddevDB]
	m[MetricPacingScore] = pacingScore(m[MetricWordsPerMinute], band)

	sanitize(m)
	return m
}

// pacingScore maps words-per-minute onto [0,1]: 1 inside the target band,
// falling linearly to 0 at band.Low−80 below and band.High+130 above.
func pacingScore(wpm float64, band WPMBand) float64 {
	if band.High <= band.Low {
		band = DefaultWPMBand()
	}
	switch {
	case wpm <= 0:
		return 0
	case wpm < band.Low:
		return math.Max(0, 1-(band.Low-wpm)/80)
	case wpm <= band.High:
		return 1
	default:
		return math.Max(0, 1-(wpm-band.High)/130)
	}
}

// sanitize enforces the output invariants: no NaN or infinity anywhere,
// ratios in [0,1], every other metric non-negative except hnr_db, which is
// legitimately signed.
func sanitize(m MetricSet) {
	for _, k := range MetricKeys {
		v := m[k]
		if math.IsNaN(v) {
			v = 0
		}
		switch k {
		case MetricPauseRatio, MetricGoodPauseRatio, MetricBadPauseRatio, MetricFillerRatio, MetricPacingScore:
			v = clamp(v, 0, 1)
		case MetricHNRdB:
			v = clamp(v, -math.MaxFloat64, math.MaxFloat64)
		default:
			v = clamp(v, 0, math.MaxFloat64)
		}
		m[k] = v
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsInf(v, -1) || v < lo {
		return lo
	}
	if math.IsInf(v, 1) || v > hi {
		return hi
	}
	return v
}

func filterPositive(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func filterFinite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	mu := mean(vals)
	acc := 0.0
	for _, v := range vals {
		acc += (v - mu) * (v - mu)
	}
	return math.Sqrt(acc / float64(len(vals)))
}

func valueRange(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}
