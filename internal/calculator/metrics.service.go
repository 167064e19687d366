package calculator

import (
	"fmt"

	"floodloss/internal/domain"

	"github.com/montanaflynn/stats"
)

// CalculateLossDistribution summarizes the monetary losses of one
// intensity. Missing values must already be filtered out.
func CalculateLossDistribution(losses []float64) (*domain.LossDistribution, error) {
	if len(losses) == 0 {
		return nil, fmt.Errorf("cannot calculate distribution of 0 losses")
	}

	mean, err := stats.Mean(losses)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(losses)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(losses)
	if err != nil {
		return nil, err
	}
	p95, err := stats.PercentileNearestRank(losses, 95)
	if err != nil {
		return nil, err
	}

	return &domain.LossDistribution{
		Mean:   mean,
		Median: median,
		Max:    max,
		P95:    p95,
	}, nil
}
