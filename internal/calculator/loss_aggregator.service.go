package calculator

import (
	"context"
	"fmt"
	"math"
	"sync"

	"floodloss/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AggregatorConfig struct {
	Naming      domain.ColumnNaming
	Intensities []string
	Workers     int
}

// LossAggregator computes per-asset loss columns for every intensity and
// the statistics summary of the run.
type LossAggregator interface {
	Evaluate(ctx context.Context, assets []*domain.Asset) (*domain.StatsSummary, error)
}

type lossAggregatorHandler struct {
	Config   AggregatorConfig
	Resolver LossResolver
	Logger   *zap.SugaredLogger
}

func NewLossAggregator(cfg AggregatorConfig, resolver LossResolver, logger *zap.SugaredLogger) LossAggregator {
	return lossAggregatorHandler{
		Config:   cfg,
		Resolver: resolver,
		Logger:   logger,
	}
}

// Evaluate writes PercLoss and LossValue for every configured intensity on
// every asset, replacing whatever a previous run left there. A resolver miss
// leaves both values nil; nil values are excluded from the loss sums.
//
// Assets are spread over Config.Workers goroutines. Each asset is only
// written by the worker that picked it up and the sums are reduced in asset
// order afterwards, so the result does not depend on the worker count.
//
// If ctx is cancelled the error wraps ctx.Err() and no summary is returned.
// Assets already picked up by a worker carry new columns while the rest keep
// whatever they held before, so the table must not be written out.
func (h lossAggregatorHandler) Evaluate(ctx context.Context, assets []*domain.Asset) (*domain.StatsSummary, error) {
	if len(h.Config.Intensities) == 0 {
		return nil, fmt.Errorf("cannot evaluate losses with 0 intensities")
	}

	numGoroutines := h.Config.Workers
	if numGoroutines < 1 {
		numGoroutines = 1
	}
	if numGoroutines > len(assets) {
		numGoroutines = len(assets)
	}

	inputCh := make(chan *domain.Asset, len(assets))
	for _, a := range assets {
		inputCh <- a
	}
	close(inputCh)

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case a, ok := <-inputCh:
					if !ok {
						return
					}
					h.evaluateAsset(a)
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loss evaluation interrupted: %w", err)
	}

	return h.summarize(assets)
}

func (h lossAggregatorHandler) evaluateAsset(a *domain.Asset) {
	percLoss := make(map[string]*float64, len(h.Config.Intensities))
	lossValue := make(map[string]*float64, len(h.Config.Intensities))

	for _, intensity := range h.Config.Intensities {
		depth := math.NaN()
		if d := a.Depth(intensity); d != nil {
			depth = *d
		}

		perc, err := h.Resolver.Resolve(a.CurveID, depth)
		if err != nil {
			percLoss[intensity] = nil
			lossValue[intensity] = nil
			continue
		}

		value := perc * a.Value
		if math.IsNaN(value) || math.IsInf(value, 0) {
			h.Logger.Warnw("loss value is not finite", "asset", a.ID, "intensity", intensity, "percLoss", perc, "value", a.Value)
			percLoss[intensity] = &perc
			lossValue[intensity] = nil
			continue
		}

		percLoss[intensity] = &perc
		lossValue[intensity] = &value
	}

	a.PercLoss = percLoss
	a.LossValue = lossValue
}

func (h lossAggregatorHandler) summarize(assets []*domain.Asset) (*domain.StatsSummary, error) {
	totalValue := decimal.Zero
	for _, a := range assets {
		totalValue = totalValue.Add(decimal.NewFromFloat(a.Value))
	}

	results := make([]domain.IntensityResult, 0, len(h.Config.Intensities))
	for _, intensity := range h.Config.Intensities {
		result := domain.IntensityResult{
			Intensity: intensity,
			TotalLoss: decimal.Zero,
		}
		losses := []float64{}

		for _, a := range assets {
			if a.IsFlooded(intensity) {
				result.FloodedAssets++
			}
			lv := a.LossValue[intensity]
			if lv == nil {
				result.MissingCount++
				continue
			}
			result.EvaluatedCount++
			result.TotalLoss = result.TotalLoss.Add(decimal.NewFromFloat(*lv))
			losses = append(losses, *lv)
		}

		if len(losses) > 0 {
			dist, err := CalculateLossDistribution(losses)
			if err != nil {
				return nil, fmt.Errorf("failed to calculate loss distribution for %s: %w", intensity, err)
			}
			result.Distribution = dist
		}

		h.Logger.Infow(
			"evaluated intensity",
			"intensity", intensity,
			"totalLoss", result.TotalLoss.String(),
			"floodedAssets", result.FloodedAssets,
			"missing", result.MissingCount,
		)
		results = append(results, result)
	}

	return &domain.StatsSummary{
		NumAssets:   len(assets),
		TotalValue:  totalValue,
		Intensities: results,
		Naming:      h.Config.Naming,
	}, nil
}
