package pipeline

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PSchramm12/ACM-Project/internal/topics"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	classifier, err := topics.NewClassifier(topics.DefaultConfig())
	require.NoError(t, err)
	return New(classifier, 4)
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func pollPoint(d int, value float64) models.PollDataPoint {
	return models.PollDataPoint{Date: day(d), Value: decimal.NewFromFloat(value)}
}

func TestPipeline_Run(t *testing.T) {
	pipe := testPipeline(t)

	// volume ramps 1, 2, 3 posts across three days
	posts := []models.Post{
		{ID: "p1", CleanedText: "I love the new jobs report", Timestamp: day(1)},
		{ID: "p2", CleanedText: "inflation is terrible and unfair", Timestamp: day(2)},
		{ID: "p3", CleanedText: "the economy looks great today", Timestamp: day(2)},
		{ID: "p4", CleanedText: "jobs jobs jobs", Timestamp: day(3)},
		{ID: "p5", CleanedText: "this inflation disaster hurts everyone", Timestamp: day(3)},
		{ID: "p6", CleanedText: "a hopeful outlook on the economy", Timestamp: day(3)},
	}
	polls := []models.PollDataPoint{pollPoint(1, 41), pollPoint(2, 42), pollPoint(3, 43)}

	result, err := pipe.Run(context.Background(), posts, polls, Params{})
	require.NoError(t, err)

	require.Len(t, result.Enriched, len(posts))
	for i, e := range result.Enriched {
		assert.Equal(t, posts[i].ID, e.Sentiment.PostID)
		sum := e.Sentiment.Positive + e.Sentiment.Negative + e.Sentiment.Neutral
		assert.InDelta(t, 1.0, sum, 1e-6, "post %s", e.ID)
	}

	// every post talks about the economy
	for _, e := range result.Enriched {
		assert.True(t, e.HasTopic("economy"), "post %s topics = %v", e.ID, e.Topics)
	}

	var volume *models.CorrelationResult
	for i := range result.Correlations {
		res := &result.Correlations[i]
		if res.Signal == SignalVolume && res.Method == models.MethodPearson {
			volume = res
		}
	}
	require.NotNil(t, volume)
	assert.InDelta(t, 1.0, volume.Coefficient, 1e-9)
	assert.Equal(t, 3, volume.SampleSize)
}

func TestPipeline_AggregateCountsMatchPosts(t *testing.T) {
	pipe := testPipeline(t)

	posts := []models.Post{
		{ID: "p1", CleanedText: "school funding debate", Timestamp: day(1)},
		{ID: "p2", CleanedText: "university strike continues", Timestamp: day(2)},
		{ID: "p3", CleanedText: "students protest again", Timestamp: day(3)},
	}
	polls := []models.PollDataPoint{pollPoint(1, 41), pollPoint(2, 42), pollPoint(3, 40)}

	result, err := pipe.Run(context.Background(), posts, polls, Params{Topic: "education"})
	require.NoError(t, err)

	total := 0
	for _, a := range result.Aggregates {
		if a.Topic == "education" {
			total += a.PostCount
		}
	}
	assert.Equal(t, len(posts), total)
}

func TestPipeline_NoPollOverlap(t *testing.T) {
	pipe := testPipeline(t)

	posts := []models.Post{
		{ID: "p1", CleanedText: "jobs report", Timestamp: day(10)},
		{ID: "p2", CleanedText: "jobs report", Timestamp: day(11)},
		{ID: "p3", CleanedText: "jobs report", Timestamp: day(13)},
	}
	polls := []models.PollDataPoint{pollPoint(1, 41), pollPoint(2, 42), pollPoint(3, 43)}

	_, err := pipe.Run(context.Background(), posts, polls, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "align stage")
}

func TestPipeline_InsufficientPolls(t *testing.T) {
	pipe := testPipeline(t)

	posts := []models.Post{
		{ID: "p1", CleanedText: "jobs", Timestamp: day(1)},
		{ID: "p2", CleanedText: "jobs", Timestamp: day(2)},
	}
	polls := []models.PollDataPoint{pollPoint(1, 41), pollPoint(2, 42)}

	_, err := pipe.Run(context.Background(), posts, polls, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correlate stage")
}

func TestPipeline_ZeroVarianceSentimentIsNotFatal(t *testing.T) {
	pipe := testPipeline(t)

	// identical text every day: the sentiment series is flat
	var posts []models.Post
	for d := 1; d <= 4; d++ {
		posts = append(posts, models.Post{
			ID:          fmt.Sprintf("p%d", d),
			CleanedText: "the committee met about jobs",
			Timestamp:   day(d),
		})
	}
	polls := []models.PollDataPoint{
		pollPoint(1, 41), pollPoint(2, 42), pollPoint(3, 43), pollPoint(4, 40),
	}

	result, err := pipe.Run(context.Background(), posts, polls, Params{})
	require.NoError(t, err)

	for _, res := range result.Correlations {
		if res.Signal == SignalSentiment {
			assert.True(t, math.IsNaN(res.Coefficient),
				"flat sentiment should be undefined, got %f", res.Coefficient)
		}
	}
}

func TestPipeline_LagSweep(t *testing.T) {
	pipe := testPipeline(t)

	// volume 1,2,3,1 over four days; polls repeat that shape two days later
	var posts []models.Post
	id := 0
	for d, n := range map[int]int{1: 1, 2: 2, 3: 3, 4: 1} {
		for i := 0; i < n; i++ {
			id++
			posts = append(posts, models.Post{
				ID:          fmt.Sprintf("p%d", id),
				CleanedText: "jobs and the economy",
				Timestamp:   day(d),
			})
		}
	}
	polls := []models.PollDataPoint{
		pollPoint(1, 40), pollPoint(2, 40), pollPoint(3, 41),
		pollPoint(4, 42), pollPoint(5, 43), pollPoint(6, 41),
	}

	result, err := pipe.Run(context.Background(), posts, polls, Params{MaxLag: 3})
	require.NoError(t, err)

	for _, res := range result.Correlations {
		if res.Signal == SignalVolume && res.Method == models.MethodPearson {
			assert.Equal(t, 2, res.Lag)
		}
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	pipe := testPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	posts := make([]models.Post, 500)
	for i := range posts {
		posts[i] = models.Post{ID: fmt.Sprintf("p%d", i), CleanedText: "jobs", Timestamp: day(1)}
	}

	_, err := pipe.Run(ctx, posts, []models.PollDataPoint{pollPoint(1, 41)}, Params{})
	assert.ErrorIs(t, err, context.Canceled)
}
