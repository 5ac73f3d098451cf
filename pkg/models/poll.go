package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PollDataPoint is a single time-stamped polling observation, e.g. an approval
// rating or candidate support percentage.
type PollDataPoint struct {
	Date       time.Time       `json:"date" db:"poll_date"`
	Value      decimal.Decimal `json:"value" db:"poll_value"`
	SeriesName string          `json:"series_name,omitempty" db:"poll_name"`
}

// ValueFloat returns the poll value as float64 for numeric processing.
func (p PollDataPoint) ValueFloat() float64 {
	return p.Value.InexactFloat64()
}
