package app

import (
	"context"
	"fmt"
	"time"

	"floodloss/internal/calculator"
	"floodloss/internal/domain"
	"floodloss/internal/repository"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LossRunApp runs the whole loss calculation for one asset map:
// 1. Read the asset table
// 2. Optionally rewrite raw depths with the configured depth expression
// 3. Evaluate losses for every intensity
// 4. Write the augmented asset map and the statistics file
// 5. Record the run in the database when one is configured
type LossRunApp interface {
	Run(ctx context.Context, input LossRunInput) (*LossRunResult, error)
}

type LossRunInput struct {
	AssetMapPath  string
	OutputMapPath string
	StatsPath     string
	DetailedStats bool
}

type LossRunResult struct {
	RunID   uuid.UUID
	Table   *domain.AssetTable
	Summary *domain.StatsSummary
}

type lossRunAppHandler struct {
	Db                   qrm.Executable
	AssetTableRepository repository.AssetTableRepository
	StatsFileRepository  repository.StatsFileRepository
	LossRunRepository    repository.LossRunRepository
	LossAggregator       calculator.LossAggregator
	DepthExpression      *calculator.DepthExpression
	Intensities          []string
	Logger               *zap.SugaredLogger
}

// NewLossRunApp wires the run. db and depthExpression may be nil.
func NewLossRunApp(
	db qrm.Executable,
	assetTableRepository repository.AssetTableRepository,
	statsFileRepository repository.StatsFileRepository,
	lossRunRepository repository.LossRunRepository,
	lossAggregator calculator.LossAggregator,
	depthExpression *calculator.DepthExpression,
	intensities []string,
	logger *zap.SugaredLogger,
) LossRunApp {
	return lossRunAppHandler{
		Db:                   db,
		AssetTableRepository: assetTableRepository,
		StatsFileRepository:  statsFileRepository,
		LossRunRepository:    lossRunRepository,
		LossAggregator:       lossAggregator,
		DepthExpression:      depthExpression,
		Intensities:          intensities,
		Logger:               logger,
	}
}

func (h lossRunAppHandler) Run(ctx context.Context, input LossRunInput) (*LossRunResult, error) {
	profile := domain.GetProfile(ctx)
	runID := uuid.New()
	startedAt := time.Now().UTC()
	log := h.Logger.With("runID", runID.String())

	_, endSpan := profile.StartNewSpan("read asset table")
	table, err := h.AssetTableRepository.Read(input.AssetMapPath)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to read asset map: %w", err)
	}
	log.Infow("read asset table", "path", input.AssetMapPath, "numAssets", len(table.Assets))

	if h.DepthExpression != nil {
		_, endSpan = profile.StartNewSpan("transform depths")
		err = h.DepthExpression.ApplyToAssets(table.Assets, h.Intensities)
		endSpan()
		if err != nil {
			return nil, err
		}
	}

	_, endSpan = profile.StartNewSpan("evaluate losses")
	summary, err := h.LossAggregator.Evaluate(ctx, table.Assets)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate losses: %w", err)
	}
	summary.RunID = runID

	_, endSpan = profile.StartNewSpan("write outputs")
	err = h.writeOutputs(input, table, summary)
	endSpan()
	if err != nil {
		return nil, err
	}

	if h.Db != nil && h.LossRunRepository != nil {
		_, endSpan = profile.StartNewSpan("record loss run")
		err = h.LossRunRepository.Add(h.Db, domain.LossRun{
			RunID:       runID,
			StartedAt:   startedAt,
			AssetMap:    input.AssetMapPath,
			NumAssets:   summary.NumAssets,
			Intensities: h.Intensities,
			Stats:       summary.Record(),
		})
		endSpan()
		if err != nil {
			return nil, fmt.Errorf("failed to record loss run: %w", err)
		}
	}

	log.Infow("loss run complete", "outputMap", input.OutputMapPath, "stats", input.StatsPath)

	return &LossRunResult{
		RunID:   runID,
		Table:   table,
		Summary: summary,
	}, nil
}

func (h lossRunAppHandler) writeOutputs(input LossRunInput, table *domain.AssetTable, summary *domain.StatsSummary) error {
	err := h.AssetTableRepository.Write(input.OutputMapPath, table)
	if err != nil {
		return err
	}

	var stats interface{} = summary.Record()
	if input.DetailedStats {
		stats = summary
	}
	return h.StatsFileRepository.Write(input.StatsPath, stats)
}
