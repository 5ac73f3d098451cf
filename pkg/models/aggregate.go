package models

import "time"

// TopicAll marks aggregates computed over every post regardless of topic.
const TopicAll = "all"

// Granularity is the time bucket width used for aggregation.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

// TimeBucketAggregate summarizes the posts of one topic inside one time bucket.
// Buckets with zero posts are never materialized.
type TimeBucketAggregate struct {
	BucketStart  time.Time     `json:"bucket_start" db:"bucket_start"`
	BucketEnd    time.Time     `json:"bucket_end" db:"bucket_end"`
	Topic        string        `json:"topic" db:"topic"`
	PostCount    int           `json:"post_count" db:"post_count"`
	MeanCompound float64       `json:"mean_compound" db:"mean_compound"`
	MeanPolarity float64       `json:"mean_polarity" db:"mean_polarity"`
	LabelCounts  map[Label]int `json:"label_counts"`
}

// LabelCount returns the number of posts in the bucket carrying the label.
func (a *TimeBucketAggregate) LabelCount(label Label) int {
	if a.LabelCounts == nil {
		return 0
	}
	return a.LabelCounts[label]
}
