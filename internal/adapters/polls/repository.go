package polls

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Repository handles database operations for polling data
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new polls repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Load returns poll points in a time window, oldest first. pollName narrows
// to a single named series; empty loads everything.
func (r *Repository) Load(ctx context.Context, pollName string, from, to time.Time) ([]models.PollDataPoint, error) {
	query := `
		SELECT poll_date, poll_value, COALESCE(poll_name, '')
		FROM poll_points
		WHERE poll_date >= $1 AND poll_date < $2
	`
	args := []interface{}{from, to}
	if pollName != "" {
		query += " AND poll_name = $3"
		args = append(args, pollName)
	}
	query += " ORDER BY poll_date"

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll points: %w", err)
	}
	defer rows.Close()

	var points []models.PollDataPoint
	for rows.Next() {
		var p models.PollDataPoint
		var value decimal.Decimal
		if err := rows.Scan(&p.Date, &value, &p.SeriesName); err != nil {
			return nil, fmt.Errorf("failed to scan poll point: %w", err)
		}
		p.Value = value
		points = append(points, p)
	}
	return points, rows.Err()
}

// Save stores poll points loaded by an external collector.
func (r *Repository) Save(ctx context.Context, points []models.PollDataPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO poll_points (poll_date, poll_value, poll_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (poll_date, poll_name) DO UPDATE SET
			poll_value = EXCLUDED.poll_value
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Date, p.Value, p.SeriesName); err != nil {
			return fmt.Errorf("failed to upsert poll point: %w", err)
		}
	}

	return tx.Commit()
}
