package posts

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Repository handles database operations for posts
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new posts repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// LoadCleaned returns the cleaned posts in a time window, oldest first. Posts
// without cleaned text are skipped upstream and never reach the pipeline.
func (r *Repository) LoadCleaned(ctx context.Context, from, to time.Time) ([]models.Post, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT id, text, cleaned_text, posted_at, author_id
		FROM posts
		WHERE cleaned_text <> ''
		  AND posted_at >= $1 AND posted_at < $2
		ORDER BY posted_at
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Text, &p.CleanedText, &p.Timestamp, &p.AuthorID); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// SaveEnriched upserts posts with their sentiment scores and topic membership
// for downstream persistence and visualization. Returns the number saved.
func (r *Repository) SaveEnriched(ctx context.Context, enriched []models.EnrichedPost) (int, error) {
	if len(enriched) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO enriched_posts (
			post_id, compound, positive, negative, neutral,
			polarity, subjectivity, label, topics, scored_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (post_id) DO UPDATE SET
			compound = EXCLUDED.compound,
			positive = EXCLUDED.positive,
			negative = EXCLUDED.negative,
			neutral = EXCLUDED.neutral,
			polarity = EXCLUDED.polarity,
			subjectivity = EXCLUDED.subjectivity,
			label = EXCLUDED.label,
			topics = EXCLUDED.topics,
			scored_at = EXCLUDED.scored_at
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	saved := 0
	for _, e := range enriched {
		_, err := stmt.ExecContext(ctx,
			e.ID,
			e.Sentiment.Compound,
			e.Sentiment.Positive,
			e.Sentiment.Negative,
			e.Sentiment.Neutral,
			e.Sentiment.Polarity,
			e.Sentiment.Subjectivity,
			string(e.Sentiment.Label),
			pq.Array(e.Topics),
			now,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert enriched post %s: %w", e.ID, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}
