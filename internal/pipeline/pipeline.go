package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/internal/aggregate"
	"github.com/PSchramm12/ACM-Project/internal/correlate"
	"github.com/PSchramm12/ACM-Project/internal/sentiment"
	"github.com/PSchramm12/ACM-Project/internal/timeseries"
	"github.com/PSchramm12/ACM-Project/internal/topics"
	"github.com/PSchramm12/ACM-Project/pkg/logger"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Signal names used on correlation results.
const (
	SignalVolume    = "volume"
	SignalSentiment = "sentiment"
)

// Params controls one batch run.
type Params struct {
	Granularity models.Granularity
	// Topic selects which aggregate series is correlated against the polls.
	// Empty means the "all" series.
	Topic string
	// TopicFilter restricts which topics are aggregated. Empty keeps all.
	TopicFilter []string
	// MaxLag enables a lag sweep over [-MaxLag, +MaxLag] bucket steps.
	MaxLag int
	// Spearman additionally computes rank correlations.
	Spearman bool
}

// Result is everything a batch run exposes to collaborators.
type Result struct {
	Enriched     []models.EnrichedPost
	Aggregates   []models.TimeBucketAggregate
	Correlations []models.CorrelationResult
}

// Pipeline runs the full batch: classify, score, aggregate, align, correlate.
// Each run is a stateless transformation of its inputs; the pipeline itself
// holds only read-only collaborators and is safe to reuse across runs.
type Pipeline struct {
	classifier *topics.Classifier
	scorer     *sentiment.Scorer
	engine     *correlate.Engine
	workers    int
}

// New builds a pipeline over the given topic classifier. workers bounds the
// per-post fan-out; zero or negative picks GOMAXPROCS.
func New(classifier *topics.Classifier, workers int) *Pipeline {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{
		classifier: classifier,
		scorer:     sentiment.NewScorer(),
		engine:     correlate.NewEngine(),
		workers:    workers,
	}
}

// Run executes one batch. A failed stage is reported with its name; partial
// results are discarded since stages are cheap to recompute.
func (p *Pipeline) Run(ctx context.Context, posts []models.Post, polls []models.PollDataPoint, params Params) (*Result, error) {
	if params.Granularity == "" {
		params.Granularity = models.GranularityDay
	}
	if params.Topic == "" {
		params.Topic = models.TopicAll
	}

	enriched, err := p.Enrich(ctx, posts)
	if err != nil {
		return nil, fmt.Errorf("score stage: %w", err)
	}

	aggs, err := aggregate.Aggregate(enriched, params.Granularity, params.TopicFilter)
	if err != nil {
		return nil, fmt.Errorf("aggregate stage: %w", err)
	}

	correlations, err := p.correlate(aggs, polls, params)
	if err != nil {
		return nil, err
	}

	logger.Info("batch run complete",
		zap.Int("posts", len(posts)),
		zap.Int("aggregates", len(aggs)),
		zap.Int("correlations", len(correlations)),
	)

	return &Result{
		Enriched:     enriched,
		Aggregates:   aggs,
		Correlations: correlations,
	}, nil
}

// Enrich classifies and scores every post, fanning the per-post work out over
// the worker pool. Posts are independent; the only shared state is the
// read-only topic config.
func (p *Pipeline) Enrich(ctx context.Context, posts []models.Post) ([]models.EnrichedPost, error) {
	enriched := make([]models.EnrichedPost, len(posts))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				post := posts[i]
				enriched[i] = models.EnrichedPost{
					Post:      post,
					Sentiment: p.scorer.Score(post.ID, post.CleanedText),
					Topics:    p.classifier.Classify(post.CleanedText),
				}
			}
		}()
	}

	var err error
dispatch:
	for i := range posts {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return enriched, nil
}

// correlate aligns the selected topic's volume and sentiment series against
// the polls and computes the requested statistics.
func (p *Pipeline) correlate(aggs []models.TimeBucketAggregate, polls []models.PollDataPoint, params Params) ([]models.CorrelationResult, error) {
	topicAggs := aggregate.FilterTopic(aggs, params.Topic)

	pollSeries := timeseries.PollSeries(polls, func(ts time.Time) time.Time {
		return aggregate.BucketStart(ts, params.Granularity)
	})

	type signalSpec struct {
		name   string
		points []timeseries.Point
		fill   timeseries.FillPolicy
	}

	// Empty volume buckets are true zeros; empty sentiment buckets mean "no
	// data" and carry the last observation forward instead.
	specs := []signalSpec{
		{SignalVolume, timeseries.VolumeSeries(topicAggs), timeseries.FillZero},
		{SignalSentiment, timeseries.SentimentSeries(topicAggs), timeseries.FillForward},
	}

	methods := []models.CorrelationMethod{models.MethodPearson}
	if params.Spearman {
		methods = append(methods, models.MethodSpearman)
	}

	var results []models.CorrelationResult
	for _, spec := range specs {
		aligned, err := timeseries.Align(spec.points, pollSeries, timeseries.AxisUnion, spec.fill)
		if err != nil {
			return nil, fmt.Errorf("align stage (%s): %w", spec.name, err)
		}

		for _, method := range methods {
			var res *models.CorrelationResult
			if params.MaxLag > 0 {
				res, err = p.engine.LagSweep(spec.name, aligned, method, params.MaxLag)
			} else {
				res, err = p.engine.Correlate(spec.name, aligned, method)
			}
			if err != nil {
				return nil, fmt.Errorf("correlate stage (%s/%s): %w", spec.name, method, err)
			}
			results = append(results, *res)
		}
	}

	return results, nil
}
