package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/internal/adapters/clickhouse"
	"github.com/PSchramm12/ACM-Project/internal/adapters/config"
	"github.com/PSchramm12/ACM-Project/internal/adapters/database"
	"github.com/PSchramm12/ACM-Project/internal/adapters/polls"
	"github.com/PSchramm12/ACM-Project/internal/adapters/posts"
	"github.com/PSchramm12/ACM-Project/internal/adapters/telegram"
	"github.com/PSchramm12/ACM-Project/internal/pipeline"
	"github.com/PSchramm12/ACM-Project/internal/topics"
	"github.com/PSchramm12/ACM-Project/internal/workers"
	"github.com/PSchramm12/ACM-Project/pkg/logger"
	"github.com/PSchramm12/ACM-Project/pkg/models"
	"github.com/PSchramm12/ACM-Project/pkg/worker"
)

func main() {
	once := flag.Bool("once", false, "run a single batch and exit")
	window := flag.Duration("window", 90*24*time.Hour, "trailing analysis window")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx, *once, *window); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, once bool, window time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("sentiment analyzer starting",
		zap.String("granularity", cfg.Analysis.Granularity),
		zap.String("topic", cfg.Analysis.Topic),
	)

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db.Conn(), "./migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	topicCfg, err := loadTopicConfig(cfg.Analysis.TopicsFile)
	if err != nil {
		return err
	}
	classifier, err := topics.NewClassifier(topicCfg)
	if err != nil {
		return err
	}

	pipe := pipeline.New(classifier, cfg.Analysis.Workers)
	params := pipeline.Params{
		Granularity: models.Granularity(cfg.Analysis.Granularity),
		Topic:       cfg.Analysis.Topic,
		MaxLag:      cfg.Analysis.MaxLag,
		Spearman:    cfg.Analysis.Spearman,
	}

	postRepo := posts.NewRepository(db.DB())
	pollRepo := polls.NewRepository(db.DB())

	var sink *clickhouse.BatchWriter
	var corrRepo *clickhouse.Repository
	if cfg.ClickHouse.Enabled {
		chDB, err := clickhouse.Connect(&cfg.ClickHouse)
		if err != nil {
			return err
		}
		defer chDB.Close()

		corrRepo = clickhouse.NewRepository(chDB)
		sink = clickhouse.NewBatchWriter(corrRepo, params.Granularity, 1000, time.Minute)
		defer sink.Close()
	}

	notifier, err := telegram.NewNotifier(&cfg.Telegram)
	if err != nil {
		logger.Warn("telegram notifier disabled", zap.Error(err))
	}

	analysis := workers.NewAnalysisWorker(
		pipe, params, postRepo, pollRepo,
		cfg.Analysis.PollName, window,
		sink, corrRepo, notifier,
	)

	if once {
		return analysis.Run(ctx)
	}

	pw := worker.NewPeriodicWorker(analysis, cfg.Analysis.Interval)
	pw.Start(ctx)

	<-ctx.Done()
	logger.Info("shutting down gracefully...")
	pw.Stop(30 * time.Second)
	return nil
}

// loadTopicConfig reads the YAML topic file, falling back to the built-in set.
func loadTopicConfig(path string) (*topics.Config, error) {
	if path == "" {
		return topics.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics file: %w", err)
	}
	cfg, err := topics.Load(data)
	if err != nil {
		return nil, err
	}

	logger.Info("topic config loaded",
		zap.String("file", path),
		zap.Strings("topics", cfg.Names()),
	)
	return cfg, nil
}
