package aggregate

import (
	"fmt"
	"sort"
	"time"

	"github.com/cinar/indicator"

	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Aggregate reduces enriched posts into one TimeBucketAggregate per
// (bucket, topic) pair present in the data. Every post contributes to the
// "all" topic; posts additionally contribute to each topic they carry. When
// topicFilter is non-empty only those topics (plus "all") are produced.
// Buckets without posts are omitted; alignment onto a dense axis is the
// aligner's job.
func Aggregate(posts []models.EnrichedPost, granularity models.Granularity, topicFilter []string) ([]models.TimeBucketAggregate, error) {
	if granularity != models.GranularityDay && granularity != models.GranularityWeek {
		return nil, fmt.Errorf("unsupported granularity: %s", granularity)
	}

	filter := map[string]bool{}
	for _, t := range topicFilter {
		filter[t] = true
	}

	type key struct {
		bucket time.Time
		topic  string
	}

	type acc struct {
		count       int
		compoundSum float64
		polaritySum float64
		labels      map[models.Label]int
	}

	accs := map[key]*acc{}
	add := func(bucket time.Time, topic string, p *models.EnrichedPost) {
		k := key{bucket: bucket, topic: topic}
		a, ok := accs[k]
		if !ok {
			a = &acc{labels: map[models.Label]int{}}
			accs[k] = a
		}
		a.count++
		a.compoundSum += p.Sentiment.Compound
		a.polaritySum += p.Sentiment.Polarity
		a.labels[p.Sentiment.Label]++
	}

	for i := range posts {
		p := &posts[i]
		bucket := BucketStart(p.Timestamp, granularity)

		add(bucket, models.TopicAll, p)
		for _, topic := range p.Topics {
			if len(filter) > 0 && !filter[topic] {
				continue
			}
			add(bucket, topic, p)
		}
	}

	out := make([]models.TimeBucketAggregate, 0, len(accs))
	for k, a := range accs {
		out = append(out, models.TimeBucketAggregate{
			BucketStart:  k.bucket,
			BucketEnd:    bucketEnd(k.bucket, granularity),
			Topic:        k.topic,
			PostCount:    a.count,
			MeanCompound: a.compoundSum / float64(a.count),
			MeanPolarity: a.polaritySum / float64(a.count),
			LabelCounts:  a.labels,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].BucketStart.Before(out[j].BucketStart)
	})
	return out, nil
}

// BucketStart truncates a timestamp to its bucket boundary in UTC. Weeks
// start on Monday.
func BucketStart(ts time.Time, granularity models.Granularity) time.Time {
	t := ts.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if granularity == models.GranularityDay {
		return day
	}
	// back up to Monday
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func bucketEnd(start time.Time, granularity models.Granularity) time.Time {
	if granularity == models.GranularityDay {
		return start.AddDate(0, 0, 1)
	}
	return start.AddDate(0, 0, 7)
}

// FilterTopic returns the aggregates of a single topic, ordered by bucket.
func FilterTopic(aggs []models.TimeBucketAggregate, topic string) []models.TimeBucketAggregate {
	var out []models.TimeBucketAggregate
	for _, a := range aggs {
		if a.Topic == topic {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BucketStart.Before(out[j].BucketStart) })
	return out
}

// Smooth applies a simple moving average over a bucket value series for
// trend output. Window of 1 or less returns the input unchanged.
func Smooth(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		return values
	}
	if window > len(values) {
		window = len(values)
	}
	return indicator.Sma(window, values)
}
