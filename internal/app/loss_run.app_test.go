package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"floodloss/internal/calculator"
	"floodloss/internal/domain"
	mock_repository "floodloss/internal/repository/mocks"
	"floodloss/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var naming = domain.ColumnNaming{
	ValueColumn:     "value",
	CurveColumn:     "loss_curve",
	IntensitySuffix: "_maximum",
	PercLossSuffix:  "_perc_loss",
	LossValueSuffix: "_loss_value",
}

func newAggregator(t *testing.T) calculator.LossAggregator {
	t.Helper()
	curve, err := calculator.BuildLossCurve("low_rise", []domain.RawCurveSample{
		{Depth: 0, Loss: 0},
		{Depth: 100, Loss: 0.5},
		{Depth: 200, Loss: 1},
	}, 10, 200)
	require.NoError(t, err)

	store := calculator.NewCurveStore(10, map[string]*domain.LossCurve{"low_rise": curve})
	return calculator.NewLossAggregator(
		calculator.AggregatorConfig{
			Naming:      naming,
			Intensities: []string{"rp100"},
			Workers:     2,
		},
		calculator.NewLossResolver(store, zap.NewNop().Sugar()),
		zap.NewNop().Sugar(),
	)
}

func newTable() *domain.AssetTable {
	return &domain.AssetTable{
		Columns: []string{"value", "loss_curve", "rp100_maximum"},
		Assets: []*domain.Asset{
			{ID: "a", Value: 100000, CurveID: "low_rise", Depths: map[string]*float64{"rp100": util.FloatPointer(150)}},
			{ID: "b", Value: 100000, CurveID: "low_rise", Depths: map[string]*float64{"rp100": util.FloatPointer(-30)}},
		},
	}
}

// execStub stands in for the database handle. The loss run repository is
// mocked, so it is never executed against.
type execStub struct{}

func (execStub) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errors.New("unexpected query")
}

func Test_lossRunAppHandler_Run(t *testing.T) {
	input := LossRunInput{
		AssetMapPath:  "data/assets.csv",
		OutputMapPath: "losses.csv",
		StatsPath:     "losses.json",
	}

	t.Run("writes map and stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)
		table := newTable()

		assetRepo.EXPECT().Read("data/assets.csv").Return(table, nil)
		assetRepo.EXPECT().Write("losses.csv", table).Return(nil)
		statsRepo.EXPECT().Write("losses.json", gomock.Any()).DoAndReturn(func(path string, stats interface{}) error {
			require.Equal(
				t,
				"",
				cmp.Diff(
					map[string]interface{}{
						"value_sum":            float64(200000),
						"rp100_loss_value_sum": float64(75000),
						"rp100_flooded_assets": 2,
					},
					stats,
				),
			)
			return nil
		})

		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		result, err := app.Run(context.Background(), input)
		require.NoError(t, err)

		require.Equal(t, result.RunID, result.Summary.RunID)
		require.Equal(t, 0.75, *table.Assets[0].PercLoss["rp100"])
		// -30 is bucket -3, which the curve does not have
		require.Nil(t, table.Assets[1].PercLoss["rp100"])
	})

	t.Run("depth expression clamps before evaluation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)
		table := newTable()

		assetRepo.EXPECT().Read(gomock.Any()).Return(table, nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		statsRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		expr, err := calculator.NewDepthExpression("depth <= 0.0 ? 0.0 : depth")
		require.NoError(t, err)

		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), expr, []string{"rp100"}, zap.NewNop().Sugar())
		result, err := app.Run(context.Background(), input)
		require.NoError(t, err)

		require.Equal(t, 0.0, *table.Assets[1].PercLoss["rp100"])
		rp100, ok := result.Summary.Get("rp100")
		require.True(t, ok)
		require.Equal(t, 1, rp100.FloodedAssets)
		require.Equal(t, 0, rp100.MissingCount)
	})

	t.Run("detailed stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)

		assetRepo.EXPECT().Read(gomock.Any()).Return(newTable(), nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		statsRepo.EXPECT().Write("losses.json", gomock.AssignableToTypeOf(&domain.StatsSummary{})).Return(nil)

		in := input
		in.DetailedStats = true
		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		_, err := app.Run(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("unreadable asset map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)

		assetRepo.EXPECT().Read(gomock.Any()).Return(nil, errors.New("no such file"))

		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		_, err := app.Run(context.Background(), input)
		require.ErrorContains(t, err, "no such file")
	})

	t.Run("profile spans", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)

		assetRepo.EXPECT().Read(gomock.Any()).Return(newTable(), nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		statsRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		profile, endProfile := domain.NewProfile()
		ctx := domain.NewCtxWithProfile(context.Background(), profile)

		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		_, err := app.Run(ctx, input)
		require.NoError(t, err)
		endProfile()

		names := []string{}
		for _, s := range profile.Spans {
			names = append(names, s.Name)
			require.NotNil(t, s.Elapsed)
		}
		require.Equal(t, []string{"read asset table", "evaluate losses", "write outputs"}, names)
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("records the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)
		lossRunRepo := mock_repository.NewMockLossRunRepository(ctrl)
		db := execStub{}

		assetRepo.EXPECT().Read(gomock.Any()).Return(newTable(), nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		statsRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		var recorded domain.LossRun
		lossRunRepo.EXPECT().Add(db, gomock.Any()).DoAndReturn(func(_ interface{}, run domain.LossRun) error {
			recorded = run
			return nil
		})

		profile, _ := domain.NewProfile()
		ctx := domain.NewCtxWithProfile(context.Background(), profile)

		app := NewLossRunApp(db, assetRepo, statsRepo, lossRunRepo, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		result, err := app.Run(ctx, input)
		require.NoError(t, err)

		require.Equal(t, result.RunID, recorded.RunID)
		require.Equal(t, "data/assets.csv", recorded.AssetMap)
		require.Equal(t, 2, recorded.NumAssets)
		require.Equal(t, []string{"rp100"}, recorded.Intensities)
		require.False(t, recorded.StartedAt.IsZero())
		require.Equal(t, "", cmp.Diff(result.Summary.Record(), recorded.Stats))
		require.Equal(t, "record loss run", profile.Spans[len(profile.Spans)-1].Name)
	})

	t.Run("failing to record the run fails the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)
		lossRunRepo := mock_repository.NewMockLossRunRepository(ctrl)

		assetRepo.EXPECT().Read(gomock.Any()).Return(newTable(), nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		statsRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		lossRunRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		app := NewLossRunApp(execStub{}, assetRepo, statsRepo, lossRunRepo, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		_, err := app.Run(context.Background(), input)
		require.ErrorContains(t, err, "failed to record loss run")
		require.ErrorContains(t, err, "connection refused")
	})

	t.Run("spans are closed when a stage fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepo := mock_repository.NewMockAssetTableRepository(ctrl)
		statsRepo := mock_repository.NewMockStatsFileRepository(ctrl)

		assetRepo.EXPECT().Read(gomock.Any()).Return(newTable(), nil)
		assetRepo.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		profile, _ := domain.NewProfile()
		ctx := domain.NewCtxWithProfile(context.Background(), profile)

		app := NewLossRunApp(nil, assetRepo, statsRepo, nil, newAggregator(t), nil, []string{"rp100"}, zap.NewNop().Sugar())
		_, err := app.Run(ctx, input)
		require.ErrorContains(t, err, "disk full")

		require.Len(t, profile.Spans, 3)
		for _, s := range profile.Spans {
			require.NotNil(t, s.Elapsed, s.Name)
		}
	})
}
