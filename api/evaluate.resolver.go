package api

import (
	"errors"

	"floodloss/internal/calculator"
	"floodloss/internal/domain"
	"floodloss/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type evaluateAsset struct {
	ID     string              `json:"id"`
	Value  float64             `json:"value"`
	Curve  string              `json:"curve"`
	Depths map[string]*float64 `json:"depths"`
}

type evaluateRequest struct {
	Intensities []string        `json:"intensities"`
	Assets      []evaluateAsset `json:"assets"`
}

type evaluatedAssetResponse struct {
	ID        string              `json:"id"`
	PercLoss  map[string]*float64 `json:"percLoss"`
	LossValue map[string]*float64 `json:"lossValue"`
}

type evaluateResponse struct {
	RunID   uuid.UUID                `json:"runID"`
	Stats   map[string]interface{}   `json:"stats"`
	Summary *domain.StatsSummary     `json:"summary"`
	Assets  []evaluatedAssetResponse `json:"assets"`
}

func (m ApiHandler) evaluate(c *gin.Context) {
	var requestBody evaluateRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	cfg := m.AggregatorConfig
	if len(requestBody.Intensities) > 0 {
		cfg.Intensities = requestBody.Intensities
	}
	if len(cfg.Intensities) == 0 {
		returnErrorJsonCode(errors.New("no intensities requested"), c, 400)
		return
	}

	assets := make([]*domain.Asset, 0, len(requestBody.Assets))
	for _, a := range requestBody.Assets {
		if a.Value < 0 {
			returnErrorJsonCode(errors.New("asset value must not be negative"), c, 400)
			return
		}
		id := a.ID
		if id == "" {
			id = uuid.New().String()
		}
		assets = append(assets, &domain.Asset{
			ID:      id,
			Value:   a.Value,
			CurveID: a.Curve,
			Depths:  a.Depths,
		})
	}

	log := logger.FromContext(c.Request.Context())
	aggregator := calculator.NewLossAggregator(cfg, m.LossResolver, log)
	summary, err := aggregator.Evaluate(c.Request.Context(), assets)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	summary.RunID = uuid.New()

	out := make([]evaluatedAssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, evaluatedAssetResponse{
			ID:        a.ID,
			PercLoss:  a.PercLoss,
			LossValue: a.LossValue,
		})
	}

	c.JSON(200, evaluateResponse{
		RunID:   summary.RunID,
		Stats:   summary.Record(),
		Summary: summary,
		Assets:  out,
	})
}
