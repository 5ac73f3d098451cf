package correlate

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gonum/floats"
	"github.com/google/uuid"

	"github.com/PSchramm12/ACM-Project/internal/timeseries"
	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// MinSamples is the smallest number of aligned points a correlation accepts.
const MinSamples = 3

// InsufficientDataError reports too few aligned points for a correlation.
type InsufficientDataError struct {
	Points int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("correlation needs at least %d aligned points, got %d", MinSamples, e.Points)
}

// Pearson computes the Pearson correlation coefficient of two equal-length
// sequences. Returns NaN when either sequence has zero variance; the
// coefficient is undefined there, not an error.
func Pearson(x, y []float64) float64 {
	n := float64(len(x))
	meanX := floats.Sum(x) / n
	meanY := floats.Sum(y) / n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

// Spearman computes the rank correlation coefficient, using average ranks
// for ties.
func Spearman(x, y []float64) float64 {
	return Pearson(ranks(x), ranks(y))
}

// ranks assigns fractional average ranks (1-based) to a sequence.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranked := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// tied block [i, j] shares the average rank
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranked[idx[k]] = avg
		}
		i = j + 1
	}
	return ranked
}

// Engine computes correlation statistics over aligned series.
type Engine struct{}

// NewEngine creates a correlation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Correlate computes the coefficient of an aligned series at lag zero.
func (e *Engine) Correlate(signal string, series *timeseries.AlignedSeries, method models.CorrelationMethod) (*models.CorrelationResult, error) {
	if series.Len() < MinSamples {
		return nil, &InsufficientDataError{Points: series.Len()}
	}

	coeff, err := apply(method, series.Signal, series.Poll)
	if err != nil {
		return nil, err
	}

	return &models.CorrelationResult{
		ID:          uuid.New(),
		Signal:      signal,
		Method:      method,
		Coefficient: coeff,
		Lag:         0,
		SampleSize:  series.Len(),
		ComputedAt:  time.Now().UTC(),
	}, nil
}

// LagSweep shifts the signal series by every lag in [-maxLag, +maxLag] bucket
// steps and returns the lag maximizing the absolute coefficient. Positive lag
// means the signal leads the polls. Lags whose overlap drops below MinSamples
// are skipped; ties go to the lag closer to zero.
func (e *Engine) LagSweep(signal string, series *timeseries.AlignedSeries, method models.CorrelationMethod, maxLag int) (*models.CorrelationResult, error) {
	if maxLag < 0 {
		return nil, fmt.Errorf("negative max lag: %d", maxLag)
	}
	if series.Len() < MinSamples {
		return nil, &InsufficientDataError{Points: series.Len()}
	}

	best := &models.CorrelationResult{
		ID:          uuid.New(),
		Signal:      signal,
		Method:      method,
		Coefficient: math.NaN(),
		ComputedAt:  time.Now().UTC(),
	}

	for lag := -maxLag; lag <= maxLag; lag++ {
		x, y := shift(series.Signal, series.Poll, lag)
		if len(x) < MinSamples {
			continue
		}

		coeff, err := apply(method, x, y)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(coeff) {
			continue
		}

		better := math.IsNaN(best.Coefficient) ||
			math.Abs(coeff) > math.Abs(best.Coefficient) ||
			(math.Abs(coeff) == math.Abs(best.Coefficient) && abs(lag) < abs(best.Lag))
		if better {
			best.Coefficient = coeff
			best.Lag = lag
			best.SampleSize = len(x)
		}
	}

	if best.SampleSize == 0 {
		// every lag either NaN'd out or fell under the sample floor
		best.SampleSize = series.Len()
	}
	return best, nil
}

// shift offsets the signal against the poll series by lag steps and returns
// the overlapping windows.
func shift(signal, poll []float64, lag int) ([]float64, []float64) {
	n := len(signal)
	switch {
	case lag > 0:
		if lag >= n {
			return nil, nil
		}
		return signal[:n-lag], poll[lag:]
	case lag < 0:
		if -lag >= n {
			return nil, nil
		}
		return signal[-lag:], poll[:n+lag]
	default:
		return signal, poll
	}
}

func apply(method models.CorrelationMethod, x, y []float64) (float64, error) {
	switch method {
	case models.MethodPearson:
		return Pearson(x, y), nil
	case models.MethodSpearman:
		return Spearman(x, y), nil
	default:
		return 0, fmt.Errorf("unsupported correlation method: %s", method)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
