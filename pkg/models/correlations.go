package models

import (
	"time"

	"github.com/google/uuid"
)

// CorrelationMethod names the statistic used for a correlation result.
type CorrelationMethod string

const (
	MethodPearson  CorrelationMethod = "pearson"
	MethodSpearman CorrelationMethod = "spearman"
)

// CorrelationResult records one correlation computation between an aggregated
// post signal and a polling series. Coefficient is NaN when either side has
// zero variance.
type CorrelationResult struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	Signal      string            `json:"signal" db:"signal"`
	Method      CorrelationMethod `json:"method" db:"method"`
	Coefficient float64           `json:"coefficient" db:"coefficient"`
	Lag         int               `json:"lag" db:"lag"`
	SampleSize  int               `json:"sample_size" db:"sample_size"`
	ComputedAt  time.Time         `json:"computed_at" db:"computed_at"`
}
