package calculator

import (
	"errors"
	"math"
	"testing"

	mock_calculator "floodloss/internal/calculator/mocks"
	"floodloss/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLowRiseStore(t *testing.T) CurveStore {
	t.Helper()
	curve, err := BuildLossCurve("low_rise", lowRiseSamples(), 10, 200)
	require.NoError(t, err)
	return NewCurveStore(10, map[string]*domain.LossCurve{
		"low_rise": curve,
	})
}

func Test_lossResolverHandler_Resolve(t *testing.T) {
	t.Run("depth inside the curve", func(t *testing.T) {
		r := NewLossResolver(newLowRiseStore(t), zap.NewNop().Sugar())

		loss, err := r.Resolve("low_rise", 150)
		require.NoError(t, err)
		require.Equal(t, 0.75, loss)
	})

	t.Run("unknown curve", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		r := NewLossResolver(newLowRiseStore(t), zap.New(core).Sugar())

		_, err := r.Resolve("nonexistent", 150)
		unknown := domain.UnknownCurveError{}
		require.True(t, errors.As(err, &unknown))
		require.Equal(t, "nonexistent", unknown.Curve)
		require.Equal(t, 1, logs.FilterMessage("loss curve unknown").Len())
	})

	t.Run("depth beyond the curve", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		r := NewLossResolver(newLowRiseStore(t), zap.New(core).Sugar())

		_, err := r.Resolve("low_rise", 260)
		notFound := domain.DepthNotFoundError{}
		require.True(t, errors.As(err, &notFound))
		require.Equal(t, domain.DepthNotFoundError{
			Depth:     260,
			Bucket:    26,
			HasBucket: true,
			Curve:     "low_rise",
		}, notFound)
		require.Equal(t, 1, logs.FilterMessage("water depth not found in loss curve").Len())
	})

	t.Run("small negative depth rounds to bucket zero", func(t *testing.T) {
		r := NewLossResolver(newLowRiseStore(t), zap.NewNop().Sugar())

		loss, err := r.Resolve("low_rise", -5)
		require.NoError(t, err)
		require.Equal(t, 0.0, loss)
	})

	t.Run("negative depth below bucket zero misses", func(t *testing.T) {
		r := NewLossResolver(newLowRiseStore(t), zap.NewNop().Sugar())

		_, err := r.Resolve("low_rise", -20)
		require.True(t, errors.As(err, &domain.DepthNotFoundError{}))
	})

	t.Run("missing depth", func(t *testing.T) {
		r := NewLossResolver(newLowRiseStore(t), zap.NewNop().Sugar())

		_, err := r.Resolve("low_rise", math.NaN())
		notFound := domain.DepthNotFoundError{}
		require.True(t, errors.As(err, &notFound))
		require.False(t, notFound.HasBucket)
	})

	t.Run("unknown curve is checked before the depth", func(t *testing.T) {
		r := NewLossResolver(newLowRiseStore(t), zap.NewNop().Sugar())

		_, err := r.Resolve("nonexistent", math.NaN())
		require.True(t, errors.As(err, &domain.UnknownCurveError{}))
	})

	t.Run("bucket boundaries agree with curve construction", func(t *testing.T) {
		curve, err := BuildLossCurve("steps", []domain.RawCurveSample{
			{Depth: 0, Loss: 0},
			{Depth: 15, Loss: 0.5},
			{Depth: 25, Loss: 0.9},
		}, 10, 30)
		require.NoError(t, err)
		r := NewLossResolver(NewCurveStore(10, map[string]*domain.LossCurve{"steps": curve}), zap.NewNop().Sugar())

		// 15 and 25 both quantize to bucket 2, which holds the value at 15
		at15, err := r.Resolve("steps", 15)
		require.NoError(t, err)
		require.Equal(t, 0.5, at15)

		at25, err := r.Resolve("steps", 25)
		require.NoError(t, err)
		require.Equal(t, 0.5, at25)
	})

	t.Run("fractional resolution", func(t *testing.T) {
		curve, err := BuildLossCurve("cm", []domain.RawCurveSample{
			{Depth: 0, Loss: 0},
			{Depth: 1, Loss: 1},
		}, 0.1, 1)
		require.NoError(t, err)
		r := NewLossResolver(NewCurveStore(0.1, map[string]*domain.LossCurve{"cm": curve}), zap.NewNop().Sugar())

		loss, err := r.Resolve("cm", 0.3)
		require.NoError(t, err)
		require.InDelta(t, 0.3, loss, 1e-12)
	})

	t.Run("depths beyond the int bucket range miss", func(t *testing.T) {
		curve, err := BuildLossCurve("far", []domain.RawCurveSample{
			{Depth: 0, Loss: 0},
			{Depth: 1e30, Loss: 1},
		}, 10, 200)
		require.NoError(t, err)
		r := NewLossResolver(NewCurveStore(10, map[string]*domain.LossCurve{"far": curve}), zap.NewNop().Sugar())

		for _, depth := range []float64{-1e25, 1e25} {
			_, err := r.Resolve("far", depth)
			notFound := domain.DepthNotFoundError{}
			require.True(t, errors.As(err, &notFound), depth)
			require.False(t, notFound.HasBucket)
		}
	})

	t.Run("uses the resolution the curve was built with", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_calculator.NewMockCurveStore(ctrl)
		store.EXPECT().Get("coarse").Return(&domain.LossCurve{
			Name:       "coarse",
			Resolution: 50,
			Buckets:    map[int]float64{0: 0, 1: 0.4, 2: 0.8},
		}, true)

		r := NewLossResolver(store, zap.NewNop().Sugar())
		loss, err := r.Resolve("coarse", 60)
		require.NoError(t, err)
		require.Equal(t, 0.4, loss)
	})
}
