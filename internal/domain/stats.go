package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LossDistribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	P95    float64 `json:"p95"`
}

type IntensityResult struct {
	Intensity      string            `json:"intensity"`
	TotalLoss      decimal.Decimal   `json:"totalLoss"`
	FloodedAssets  int               `json:"floodedAssets"`
	EvaluatedCount int               `json:"evaluatedAssets"`
	MissingCount   int               `json:"missingAssets"`
	Distribution   *LossDistribution `json:"distribution,omitempty"`
}

type StatsSummary struct {
	RunID       uuid.UUID         `json:"runID"`
	NumAssets   int               `json:"numAssets"`
	TotalValue  decimal.Decimal   `json:"totalValue"`
	Intensities []IntensityResult `json:"intensities"`
	Naming      ColumnNaming      `json:"-"`
}

// Record flattens the summary into the statistics record written next to
// the augmented asset map.
func (s StatsSummary) Record() map[string]interface{} {
	out := map[string]interface{}{
		s.Naming.ValueColumn + "_sum": s.TotalValue.InexactFloat64(),
	}
	for _, r := range s.Intensities {
		out[s.Naming.LossValueColumn(r.Intensity)+"_sum"] = r.TotalLoss.InexactFloat64()
		out[r.Intensity+"_flooded_assets"] = r.FloodedAssets
	}
	return out
}

func (s StatsSummary) Get(intensity string) (IntensityResult, bool) {
	for _, r := range s.Intensities {
		if r.Intensity == intensity {
			return r, true
		}
	}
	return IntensityResult{}, false
}

// LossRun is one persisted evaluation run.
type LossRun struct {
	RunID       uuid.UUID              `json:"runID"`
	StartedAt   time.Time              `json:"startedAt"`
	AssetMap    string                 `json:"assetMap"`
	NumAssets   int                    `json:"numAssets"`
	Intensities []string               `json:"intensities"`
	Stats       map[string]interface{} `json:"stats"`
}
