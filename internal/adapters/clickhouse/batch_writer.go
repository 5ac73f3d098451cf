package clickhouse

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/pkg/logger"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// BatchWriter buffers bucket aggregates across runs and flushes them to the
// repository in batches, so frequent re-analysis does not hammer the sink.
type BatchWriter struct {
	repo        *Repository
	granularity models.Granularity

	mu     sync.Mutex
	buffer []models.TimeBucketAggregate

	maxBatch int
	ticker   *time.Ticker
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewBatchWriter creates a writer flushing at maxBatch rows or every maxWait.
func NewBatchWriter(repo *Repository, granularity models.Granularity, maxBatch int, maxWait time.Duration) *BatchWriter {
	ctx, cancel := context.WithCancel(context.Background())

	bw := &BatchWriter{
		repo:        repo,
		granularity: granularity,
		buffer:      make([]models.TimeBucketAggregate, 0, maxBatch),
		maxBatch:    maxBatch,
		ticker:      time.NewTicker(maxWait),
		ctx:         ctx,
		cancel:      cancel,
	}

	bw.wg.Add(1)
	go bw.autoFlush()
	return bw
}

// Add buffers aggregates for the next flush
func (bw *BatchWriter) Add(aggs []models.TimeBucketAggregate) {
	bw.mu.Lock()
	bw.buffer = append(bw.buffer, aggs...)
	shouldFlush := len(bw.buffer) >= bw.maxBatch
	bw.mu.Unlock()

	if shouldFlush {
		bw.flush()
	}
}

func (bw *BatchWriter) autoFlush() {
	defer bw.wg.Done()

	for {
		select {
		case <-bw.ticker.C:
			bw.flush()
		case <-bw.ctx.Done():
			bw.flush()
			return
		}
	}
}

func (bw *BatchWriter) flush() {
	bw.mu.Lock()
	if len(bw.buffer) == 0 {
		bw.mu.Unlock()
		return
	}
	toWrite := make([]models.TimeBucketAggregate, len(bw.buffer))
	copy(toWrite, bw.buffer)
	bw.buffer = bw.buffer[:0]
	bw.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := bw.repo.SaveAggregates(ctx, bw.granularity, toWrite); err != nil {
		logger.Error("failed to flush aggregates to clickhouse",
			zap.Int("rows", len(toWrite)),
			zap.Error(err),
		)
		return
	}

	logger.Debug("flushed aggregates to clickhouse",
		zap.Int("rows", len(toWrite)),
	)
}

// Close stops the writer and flushes remaining rows
func (bw *BatchWriter) Close() error {
	bw.ticker.Stop()
	bw.cancel()
	bw.wg.Wait()
	return nil
}
