package calculator

import (
	"floodloss/internal/domain"

	"go.uber.org/zap"
)

// LossResolver turns a curve name and a raw water depth into a fractional
// loss. Misses come back as domain.UnknownCurveError or
// domain.DepthNotFoundError; callers treat them as missing values.
type LossResolver interface {
	Resolve(curveName string, depth float64) (float64, error)
}

type lossResolverHandler struct {
	CurveStore CurveStore
	Logger     *zap.SugaredLogger
}

func NewLossResolver(curveStore CurveStore, logger *zap.SugaredLogger) LossResolver {
	return lossResolverHandler{
		CurveStore: curveStore,
		Logger:     logger,
	}
}

// Resolve does not special-case negative depths; clamping them is up to
// whoever produced the depth.
func (h lossResolverHandler) Resolve(curveName string, depth float64) (float64, error) {
	curve, ok := h.CurveStore.Get(curveName)
	if !ok {
		h.Logger.Warnw("loss curve unknown", "curve", curveName)
		return 0, domain.UnknownCurveError{Curve: curveName}
	}

	bucket, ok := domain.BucketIndex(depth, curve.Resolution)
	if ok {
		if loss, found := curve.Get(bucket); found {
			return loss, nil
		}
	}

	err := domain.DepthNotFoundError{
		Depth:     depth,
		Bucket:    bucket,
		HasBucket: ok,
		Curve:     curveName,
	}
	h.Logger.Warnw("water depth not found in loss curve", "depth", depth, "bucket", bucket, "curve", curveName)
	return 0, err
}
