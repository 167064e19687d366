package domain

import (
	"fmt"
)

// CurveParseError means a raw curve file could not be turned into a curve.
// The curve is skipped and loading continues.
type CurveParseError struct {
	Path string
	Err  error
}

func (e CurveParseError) Error() string {
	return fmt.Sprintf("failed to parse loss curve %s: %v", e.Path, e.Err)
}

func (e CurveParseError) Unwrap() error {
	return e.Err
}

type UnknownCurveError struct {
	Curve string
}

func (e UnknownCurveError) Error() string {
	return fmt.Sprintf("loss curve <%s> unknown", e.Curve)
}

// DepthNotFoundError is returned when the bucket computed for a depth has
// no loss value, either because the depth is outside the curve's range or
// because it is missing altogether.
type DepthNotFoundError struct {
	Depth     float64
	Bucket    int
	HasBucket bool
	Curve     string
}

func (e DepthNotFoundError) Error() string {
	if !e.HasBucket {
		return fmt.Sprintf("water depth %v has no bucket in loss curve %s", e.Depth, e.Curve)
	}
	return fmt.Sprintf("water depth %v (bucket %d) not found in loss curve %s", e.Depth, e.Bucket, e.Curve)
}
