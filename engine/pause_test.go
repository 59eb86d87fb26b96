package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_Boundaries(t *testing.T) {
	th := DefaultThresholds()
	cases := []struct {
		duration float64
		want     PauseBucket
	}{
		{0.119999, BucketNone},
		{0.12, BucketShort},
		{0.249999, BucketShort},
		{0.25, BucketGood},
		{0.599999, BucketGood},
		{0.60, BucketMedium},
		{0.999999, BucketMedium},
		{1.00, BucketLong},
		{4.2, BucketLong},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, th.Bucket(tc.duration), "duration %v", tc.duration)
	}
}

func TestSegment_ZeroGap(t *testing.T) {
	spans := []WordSpan{
		{Text: "no", Start: 0, End: 0.4},
		{Text: "gap", Start: 0.4, End: 0.8},
	}
	pauses := Segment(spans, 0, DefaultThresholds())
	assert.Empty(t, pauses)
}

func TestSegment_GapBelowNoiseFloor(t *testing.T) {
	spans := []WordSpan{
		{Text: "a", Start: 0, End: 0.4},
		{Text: "b", Start: 0.519, End: 0.9},
	}
	pauses := Segment(spans, 0, DefaultThresholds())
	assert.Empty(t, pauses)
}

func TestSegment_SingleGoodPause(t *testing.T) {
	spans := []WordSpan{
		{Text: "hello", Start: 0.0, End: 0.4},
		{Text: "world", Start: 0.65, End: 1.0},
	}
	pauses := Segment(spans, 0, DefaultThresholds())
	require.Len(t, pauses, 1)
	assert.InDelta(t, 0.25, pauses[0].Duration, 1e-9)
	assert.Equal(t, BucketGood, pauses[0].Bucket)
	assert.Equal(t, 0.4, pauses[0].Start)
	assert.Equal(t, 0.65, pauses[0].End)
}

func TestSegment_NoBoundaryPausesWithoutTotalDuration(t *testing.T) {
	spans := []WordSpan{{Text: "late", Start: 2.0, End: 2.5}}
	pauses := Segment(spans, 0, DefaultThresholds())
	assert.Empty(t, pauses)
}

func TestSegment_BoundaryPauses(t *testing.T) {
	spans := []WordSpan{
		{Text: "mid", Start: 0.5, End: 1.0},
		{Text: "way", Start: 1.3, End: 2.0},
	}
	pauses := Segment(spans, 3.0, DefaultThresholds())
	require.Len(t, pauses, 3)

	assert.Equal(t, 0.0, pauses[0].Start)
	assert.Equal(t, BucketGood, pauses[0].Bucket) // leading 0.5s

	assert.InDelta(t, 0.3, pauses[1].Duration, 1e-9)
	assert.Equal(t, BucketGood, pauses[1].Bucket)

	assert.Equal(t, 3.0, pauses[2].End)
	assert.Equal(t, BucketLong, pauses[2].Bucket) // trailing 1.0s
}

func TestSegment_ChronologicalNoMerging(t *testing.T) {
	spans := []WordSpan{
		{Text: "a", Start: 0, End: 0.1},
		{Text: "b", Start: 0.4, End: 0.5},
		{Text: "c", Start: 0.8, End: 0.9},
	}
	pauses := Segment(spans, 0, DefaultThresholds())
	require.Len(t, pauses, 2)
	assert.Equal(t, BucketGood, pauses[0].Bucket)
	assert.Equal(t, BucketGood, pauses[1].Bucket)
	assert.Less(t, pauses[0].Start, pauses[1].Start)
}

func TestSegment_CustomThresholds(t *testing.T) {
	th := PauseThresholds{ShortMin: 0.05, GoodMin: 0.10, MediumMin: 0.30, LongMin: 0.50}
	spans := []WordSpan{
		{Text: "a", Start: 0, End: 0.1},
		{Text: "b", Start: 0.17, End: 0.3},
	}
	pauses := Segment(spans, 0, th)
	require.Len(t, pauses, 1)
	assert.Equal(t, BucketShort, pauses[0].Bucket)
}
