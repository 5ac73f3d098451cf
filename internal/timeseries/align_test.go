package timeseries

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSchramm12/ACM-Project/pkg/models"
	"github.com/shopspring/decimal"
)

func ts(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestAlign_PerfectOverlap(t *testing.T) {
	signal := []Point{{ts(1), 10}, {ts(2), 20}, {ts(3), 30}}
	poll := []Point{{ts(1), 1}, {ts(2), 2}, {ts(3), 3}}

	aligned, err := Align(signal, poll, AxisUnion, FillZero)
	require.NoError(t, err)

	require.Equal(t, 3, aligned.Len())
	assert.Equal(t, []float64{10, 20, 30}, aligned.Signal)
	assert.Equal(t, []float64{1, 2, 3}, aligned.Poll)
	for i, bucket := range aligned.Timestamps {
		assert.Equal(t, ts(i+1), bucket)
	}
}

func TestAlign_NoOverlap(t *testing.T) {
	signal := []Point{{ts(10), 1}, {ts(11), 2}, {ts(13), 3}}
	poll := []Point{{ts(1), 1}, {ts(2), 2}, {ts(3), 3}}

	_, err := Align(signal, poll, AxisUnion, FillZero)
	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr), "expected AlignmentError, got %v", err)
}

func TestAlign_ZeroFill(t *testing.T) {
	// day 2 has no signal observation: a volume series means zero posts
	signal := []Point{{ts(1), 5}, {ts(3), 7}}
	poll := []Point{{ts(1), 40}, {ts(2), 41}, {ts(3), 42}}

	aligned, err := Align(signal, poll, AxisUnion, FillZero)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 7}, aligned.Signal)
	assert.Equal(t, []float64{40, 41, 42}, aligned.Poll)
}

func TestAlign_ForwardFill(t *testing.T) {
	// sentiment carries the last observation through empty buckets
	signal := []Point{{ts(1), 0.5}, {ts(4), -0.2}}
	poll := []Point{{ts(1), 40}, {ts(2), 41}, {ts(3), 42}, {ts(4), 43}}

	aligned, err := Align(signal, poll, AxisUnion, FillForward)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, -0.2}, aligned.Signal)
}

func TestAlign_ForwardFillDropsLeadingGap(t *testing.T) {
	// no signal before day 2: nothing to carry forward, day 1 is dropped
	signal := []Point{{ts(2), 0.3}}
	poll := []Point{{ts(1), 40}, {ts(2), 41}, {ts(3), 42}}

	aligned, err := Align(signal, poll, AxisUnion, FillForward)
	require.NoError(t, err)
	require.Equal(t, 2, aligned.Len())
	assert.Equal(t, ts(2), aligned.Timestamps[0])
	assert.Equal(t, []float64{0.3, 0.3}, aligned.Signal)
}

func TestAlign_Intersection(t *testing.T) {
	signal := []Point{{ts(1), 5}, {ts(3), 7}}
	poll := []Point{{ts(1), 40}, {ts(2), 41}, {ts(3), 42}}

	aligned, err := Align(signal, poll, AxisIntersection, FillZero)
	require.NoError(t, err)
	require.Equal(t, 2, aligned.Len())
	assert.Equal(t, []float64{5, 7}, aligned.Signal)
	assert.Equal(t, []float64{40, 42}, aligned.Poll)
}

func TestAlign_TimestampsSharedIndexForIndex(t *testing.T) {
	signal := []Point{{ts(1), 1}, {ts(2), 2}}
	poll := []Point{{ts(2), 50}, {ts(1), 49}}

	aligned, err := Align(signal, poll, AxisUnion, FillZero)
	require.NoError(t, err)

	require.Equal(t, len(aligned.Signal), len(aligned.Poll))
	require.Equal(t, len(aligned.Signal), len(aligned.Timestamps))
	assert.True(t, aligned.Timestamps[0].Before(aligned.Timestamps[1]))
}

func TestAlign_AveragesPollPointsInSameBucket(t *testing.T) {
	signal := []Point{{ts(1), 1}, {ts(2), 2}}
	poll := []Point{{ts(1), 40}, {ts(1), 44}, {ts(2), 50}}

	aligned, err := Align(signal, poll, AxisUnion, FillZero)
	require.NoError(t, err)
	assert.Equal(t, []float64{42, 50}, aligned.Poll)
}

func TestPollSeries_BucketsAndAverages(t *testing.T) {
	polls := []models.PollDataPoint{
		{Date: ts(1).Add(9 * time.Hour), Value: decimal.NewFromFloat(40)},
		{Date: ts(1).Add(20 * time.Hour), Value: decimal.NewFromFloat(42)},
		{Date: ts(2).Add(3 * time.Hour), Value: decimal.NewFromFloat(44)},
	}

	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	points := PollSeries(polls, day)
	require.Len(t, points, 2)
	assert.Equal(t, ts(1), points[0].Timestamp)
	assert.InDelta(t, 41, points[0].Value, 1e-12)
	assert.InDelta(t, 44, points[1].Value, 1e-12)
}

func TestSeriesExtraction(t *testing.T) {
	aggs := []models.TimeBucketAggregate{
		{BucketStart: ts(1), PostCount: 4, MeanCompound: 0.25},
		{BucketStart: ts(2), PostCount: 7, MeanCompound: -0.1},
	}

	volume := VolumeSeries(aggs)
	assert.Equal(t, []Point{{ts(1), 4}, {ts(2), 7}}, volume)

	sent := SentimentSeries(aggs)
	assert.Equal(t, []Point{{ts(1), 0.25}, {ts(2), -0.1}}, sent)
}
