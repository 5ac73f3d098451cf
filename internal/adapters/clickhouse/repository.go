package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/pkg/logger"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Repository persists bucket aggregates and correlation results for
// downstream plotting and reporting
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new ClickHouse repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// SaveAggregates writes one row per (bucket, topic) aggregate. Rows mirror
// exactly what the pipeline returned to the caller.
func (r *Repository) SaveAggregates(ctx context.Context, granularity models.Granularity, aggs []models.TimeBucketAggregate) error {
	if len(aggs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	stmt, err := tx.Preparex(`
		INSERT INTO sentiment_buckets
		(bucket_start, bucket_end, granularity, topic, post_count,
		 mean_compound, mean_polarity, positive_count, negative_count, neutral_count, written_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, a := range aggs {
		_, err = stmt.ExecContext(ctx,
			a.BucketStart,
			a.BucketEnd,
			string(granularity),
			a.Topic,
			a.PostCount,
			a.MeanCompound,
			a.MeanPolarity,
			a.LabelCount(models.LabelPositive),
			a.LabelCount(models.LabelNegative),
			a.LabelCount(models.LabelNeutral),
			now,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert aggregate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("saved aggregates to clickhouse",
		zap.Int("count", len(aggs)),
	)
	return nil
}

// SaveCorrelations writes correlation result records
func (r *Repository) SaveCorrelations(ctx context.Context, results []models.CorrelationResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	stmt, err := tx.Preparex(`
		INSERT INTO correlation_results
		(id, signal, method, coefficient, lag, sample_size, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		_, err = stmt.ExecContext(ctx,
			res.ID.String(),
			res.Signal,
			string(res.Method),
			res.Coefficient,
			res.Lag,
			res.SampleSize,
			res.ComputedAt,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert correlation result: %w", err)
		}
	}

	return tx.Commit()
}
