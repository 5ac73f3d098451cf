package clickhouse

import (
	"fmt"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/PSchramm12/ACM-Project/internal/adapters/config"
	"github.com/PSchramm12/ACM-Project/pkg/logger"
)

// Connect opens a ClickHouse connection for the aggregate sink
func Connect(cfg *config.ClickHouseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("clickhouse", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open clickhouse connection: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	logger.Info("clickhouse connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)
	return db, nil
}
