package timeseries

import (
	"sort"
	"time"

	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// AlignmentError reports that two series share no overlapping time range.
type AlignmentError struct {
	SignalStart, SignalEnd time.Time
	PollStart, PollEnd     time.Time
}

func (e *AlignmentError) Error() string {
	return "series alignment: no overlapping time range between signal [" +
		e.SignalStart.Format("2006-01-02") + ", " + e.SignalEnd.Format("2006-01-02") +
		"] and polls [" + e.PollStart.Format("2006-01-02") + ", " + e.PollEnd.Format("2006-01-02") + "]"
}

// Point is one (timestamp, value) observation of a series.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// AlignedSeries holds two value sequences on a shared time axis. Signal and
// Poll have identical length and share Timestamps index-for-index.
type AlignedSeries struct {
	Timestamps []time.Time
	Signal     []float64
	Poll       []float64
}

// Len returns the number of aligned points.
func (s *AlignedSeries) Len() int {
	return len(s.Timestamps)
}

// FillPolicy says how to fill signal buckets with no observation.
type FillPolicy int

const (
	// FillZero inserts 0; correct for count series where an empty bucket
	// genuinely means zero posts.
	FillZero FillPolicy = iota
	// FillForward carries the last observed value; correct for sentiment
	// means, where an empty bucket means "no data" rather than "neutral"
	// and zero-filling would bias correlation toward zero.
	FillForward
)

// AxisPolicy picks the shared time axis relative to the poll bucket set.
type AxisPolicy int

const (
	// AxisUnion keeps every poll bucket, filling missing signal buckets.
	AxisUnion AxisPolicy = iota
	// AxisIntersection keeps only poll buckets with an observed signal bucket.
	AxisIntersection
)

// Align resamples a sparse signal series onto the bucket axis of the poll
// series. Poll points falling in the same bucket are averaged. With
// FillForward on a union axis, leading buckets before the first signal
// observation are dropped rather than invented.
func Align(signal []Point, poll []Point, axis AxisPolicy, fill FillPolicy) (*AlignedSeries, error) {
	if err := checkOverlap(signal, poll); err != nil {
		return nil, err
	}

	signalByBucket := make(map[time.Time]float64, len(signal))
	for _, p := range signal {
		signalByBucket[p.Timestamp] = p.Value
	}

	pollBuckets := averageByBucket(poll)

	aligned := &AlignedSeries{}
	var last float64
	var seen bool

	for _, pb := range pollBuckets {
		value, observed := signalByBucket[pb.Timestamp]

		switch {
		case observed:
			last, seen = value, true
		case axis == AxisIntersection:
			continue
		case fill == FillZero:
			value = 0
		case fill == FillForward:
			if !seen {
				continue
			}
			value = last
		}

		aligned.Timestamps = append(aligned.Timestamps, pb.Timestamp)
		aligned.Signal = append(aligned.Signal, value)
		aligned.Poll = append(aligned.Poll, pb.Value)
	}

	return aligned, nil
}

func checkOverlap(signal, poll []Point) error {
	if len(signal) == 0 || len(poll) == 0 {
		return &AlignmentError{}
	}

	sStart, sEnd := timeRange(signal)
	pStart, pEnd := timeRange(poll)

	if sStart.After(pEnd) || pStart.After(sEnd) {
		return &AlignmentError{
			SignalStart: sStart, SignalEnd: sEnd,
			PollStart: pStart, PollEnd: pEnd,
		}
	}
	return nil
}

func timeRange(points []Point) (time.Time, time.Time) {
	start, end := points[0].Timestamp, points[0].Timestamp
	for _, p := range points[1:] {
		if p.Timestamp.Before(start) {
			start = p.Timestamp
		}
		if p.Timestamp.After(end) {
			end = p.Timestamp
		}
	}
	return start, end
}

// averageByBucket collapses points sharing a timestamp into their mean,
// returning the result in time order.
func averageByBucket(points []Point) []Point {
	sums := map[time.Time]float64{}
	counts := map[time.Time]int{}
	for _, p := range points {
		sums[p.Timestamp] += p.Value
		counts[p.Timestamp]++
	}

	out := make([]Point, 0, len(sums))
	for ts, sum := range sums {
		out = append(out, Point{Timestamp: ts, Value: sum / float64(counts[ts])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

// VolumeSeries extracts a post-count series from bucket aggregates.
func VolumeSeries(aggs []models.TimeBucketAggregate) []Point {
	points := make([]Point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, Point{Timestamp: a.BucketStart, Value: float64(a.PostCount)})
	}
	return points
}

// SentimentSeries extracts a mean-compound series from bucket aggregates.
func SentimentSeries(aggs []models.TimeBucketAggregate) []Point {
	points := make([]Point, 0, len(aggs))
	for _, a := range aggs {
		points = append(points, Point{Timestamp: a.BucketStart, Value: a.MeanCompound})
	}
	return points
}

// PollSeries resamples poll observations onto bucket boundaries, averaging
// points that land in the same bucket.
func PollSeries(polls []models.PollDataPoint, bucket func(time.Time) time.Time) []Point {
	points := make([]Point, 0, len(polls))
	for _, p := range polls {
		points = append(points, Point{Timestamp: bucket(p.Date), Value: p.ValueFloat()})
	}
	return averageByBucket(points)
}
