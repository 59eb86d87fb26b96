package engine

// PauseThresholds holds the bucket boundaries in seconds. Each boundary is
// the inclusive lower edge of its bucket; the next boundary is the exclusive
// upper edge. Gaps below ShortMin are not countable pauses.
type PauseThresholds struct {
	ShortMin  float64 `mapstructure:"short_min" yaml:"short_min"`
	GoodMin   float64 `mapstructure:"good_min" yaml:"good_min"`
	MediumMin float64 `mapstructure:"medium_min" yaml:"medium_min"`
	LongMin   float64 `mapstructure:"long_min" yaml:"long_min"`
}

// DefaultThresholds returns boundaries tuned for presentation speech.
func DefaultThresholds() PauseThresholds {
	return PauseThresholds{ShortMin: 0.12, GoodMin: 0.25, MediumMin: 0.60, LongMin: 1.00}
}

// Bucket classifies a gap duration. Exactly GoodMin is good, not short, and
// exactly LongMin is long, not medium.
func (t PauseThresholds) Bucket(duration float64) PauseBucket {
	switch {
	case duration < t.ShortMin:
		return BucketNone
	case duration < t.GoodMin:
		return BucketShort
	case duration < t.MediumMin:
		return BucketGood
	case duration < t.LongMin:
		return BucketMedium
	default:
		return BucketLong
	}
}

// Segment derives classified pause intervals from the gaps between adjacent
// word spans. Gaps below the noise floor are not emitted. When totalDuration
// is positive, leading silence before the first word and trailing silence
// after the last word are emitted as boundary pauses under the same rule;
// without it no reference exists and word-edge silence is ignored.
//
// Output is chronological and adjacent same-bucket pauses are never merged.
func Segment(spans []WordSpan, totalDuration float64, thresholds PauseThresholds) []PauseInterval {
	pauses := []PauseInterval{}
	if len(spans) == 0 {
		return pauses
	}

	emit := func(start, end float64) {
		d := end - start
		b := thresholds.Bucket(d)
		if b == BucketNone {
			return
		}
		pauses = append(pauses, PauseInterval{Start: start, End: end, Duration: d, Bucket: b})
	}

	if totalDuration > 0 && spans[0].Start > 0 {
		emit(0, spans[0].Start)
	}
	for i := 0; i < len(spans)-1; i++ {
		if gap := spans[i+1].Start - spans[i].End; gap > 0 {
			emit(spans[i].End, spans[i+1].Start)
		}
	}
	if last := spans[len(spans)-1].End; totalDuration > last {
		emit(last, totalDuration)
	}
	return pauses
}
