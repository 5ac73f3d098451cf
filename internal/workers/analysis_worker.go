package workers

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/internal/adapters/clickhouse"
	"github.com/PSchramm12/ACM-Project/internal/adapters/polls"
	"github.com/PSchramm12/ACM-Project/internal/adapters/posts"
	"github.com/PSchramm12/ACM-Project/internal/adapters/telegram"
	"github.com/PSchramm12/ACM-Project/internal/pipeline"
	"github.com/PSchramm12/ACM-Project/pkg/logger"
)

// AnalysisWorker re-runs the batch pipeline over the trailing window and
// fans results out to the configured sinks.
type AnalysisWorker struct {
	pipe     *pipeline.Pipeline
	params   pipeline.Params
	postRepo *posts.Repository
	pollRepo *polls.Repository
	pollName string
	window   time.Duration

	// optional sinks
	sink     *clickhouse.BatchWriter
	corrRepo *clickhouse.Repository
	notifier *telegram.Notifier
}

// NewAnalysisWorker creates the worker. sink, corrRepo and notifier may be
// nil; results still go back to Postgres.
func NewAnalysisWorker(
	pipe *pipeline.Pipeline,
	params pipeline.Params,
	postRepo *posts.Repository,
	pollRepo *polls.Repository,
	pollName string,
	window time.Duration,
	sink *clickhouse.BatchWriter,
	corrRepo *clickhouse.Repository,
	notifier *telegram.Notifier,
) *AnalysisWorker {
	return &AnalysisWorker{
		pipe:     pipe,
		params:   params,
		postRepo: postRepo,
		pollRepo: pollRepo,
		pollName: pollName,
		window:   window,
		sink:     sink,
		corrRepo: corrRepo,
		notifier: notifier,
	}
}

// Name returns worker name for logging
func (w *AnalysisWorker) Name() string {
	return "analysis"
}

// Run executes one full batch over the trailing window.
func (w *AnalysisWorker) Run(ctx context.Context) error {
	to := time.Now().UTC()
	from := to.Add(-w.window)

	postList, err := w.postRepo.LoadCleaned(ctx, from, to)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}
	pollList, err := w.pollRepo.Load(ctx, w.pollName, from, to)
	if err != nil {
		return fmt.Errorf("load polls: %w", err)
	}

	if len(postList) == 0 || len(pollList) == 0 {
		logger.Warn("skipping analysis run, not enough input",
			zap.Int("posts", len(postList)),
			zap.Int("polls", len(pollList)),
		)
		return nil
	}

	result, err := w.pipe.Run(ctx, postList, pollList, w.params)
	if err != nil {
		return err
	}

	saved, err := w.postRepo.SaveEnriched(ctx, result.Enriched)
	if err != nil {
		return fmt.Errorf("save enriched posts: %w", err)
	}

	if w.sink != nil {
		w.sink.Add(result.Aggregates)
	}
	if w.corrRepo != nil {
		if err := w.corrRepo.SaveCorrelations(ctx, result.Correlations); err != nil {
			logger.Warn("failed to save correlation results", zap.Error(err))
		}
	}
	if w.notifier != nil {
		if err := w.notifier.NotifyRun(len(postList), result.Correlations); err != nil {
			logger.Warn("failed to send run summary", zap.Error(err))
		}
	}

	for _, res := range result.Correlations {
		logger.Info("correlation computed",
			zap.String("signal", res.Signal),
			zap.String("method", string(res.Method)),
			zap.Float64("coefficient", res.Coefficient),
			zap.Bool("defined", !math.IsNaN(res.Coefficient)),
			zap.Int("lag", res.Lag),
			zap.Int("samples", res.SampleSize),
		)
	}

	logger.Info("analysis run finished",
		zap.Int("posts", len(postList)),
		zap.Int("enriched_saved", saved),
		zap.Int("aggregates", len(result.Aggregates)),
	)
	return nil
}
