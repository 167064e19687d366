package domain

import (
	"math"
	"sort"
)

// RawCurveSample is one (depth, loss) control point read from a curve file.
type RawCurveSample struct {
	Depth float64 `csv:"depth"`
	Loss  float64 `csv:"loss"`
}

// LossCurve maps a quantized depth bucket to a fractional loss. Buckets
// that interpolation could not fill are absent rather than stored as NaN.
type LossCurve struct {
	Name       string
	Resolution float64
	Buckets    map[int]float64
}

// BucketIndex quantizes a depth to the bucket it falls in. Halfway values
// round to even so that curve construction and lookups agree at bucket
// boundaries. Non-finite depths, and depths whose bucket does not fit in an
// int, have no bucket.
func BucketIndex(depth, resolution float64) (int, bool) {
	q := math.RoundToEven(depth / resolution)
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0, false
	}
	// -MinInt is exactly representable as a float64, MaxInt is not
	if q < math.MinInt || q >= -math.MinInt {
		return 0, false
	}
	return int(q), true
}

func (c LossCurve) Get(bucket int) (float64, bool) {
	v, ok := c.Buckets[bucket]
	return v, ok
}

// SortedBuckets returns the populated bucket indexes in ascending order.
func (c LossCurve) SortedBuckets() []int {
	out := make([]int, 0, len(c.Buckets))
	for b := range c.Buckets {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// DepthRange is the depth covered by the lowest and highest populated bucket.
func (c LossCurve) DepthRange() (float64, float64) {
	buckets := c.SortedBuckets()
	if len(buckets) == 0 {
		return 0, 0
	}
	return float64(buckets[0]) * c.Resolution, float64(buckets[len(buckets)-1]) * c.Resolution
}
