package calculator

import (
	"fmt"
	"math"
	"sort"

	"floodloss/internal/domain"
)

// beyond this the grid is almost certainly a resolution/max_index mixup
const maxGridPoints = 10_000_000

// BuildLossCurve resamples raw (depth, loss) samples onto a grid of
// resolution-wide buckets below maxDepth. Loss values are interpolated
// linearly by depth between the samples and never extrapolated, so buckets
// outside the sampled depth range are left out of the curve.
//
// Every point, synthetic or raw, is quantized with domain.BucketIndex and
// the first point in ascending-depth order claims its bucket.
func BuildLossCurve(name string, samples []domain.RawCurveSample, resolution, maxDepth float64) (*domain.LossCurve, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("resolution must be a positive number, got %v", resolution)
	}
	if !(maxDepth >= 0) || math.IsInf(maxDepth, 0) {
		return nil, fmt.Errorf("max depth must be a non-negative number, got %v", maxDepth)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("curve %s has no samples", name)
	}
	for i, s := range samples {
		if !isFinite(s.Depth) || !isFinite(s.Loss) {
			return nil, fmt.Errorf("curve %s sample %d is not a finite (depth, loss) pair: (%v, %v)", name, i, s.Depth, s.Loss)
		}
	}

	grid, err := depthGrid(resolution, maxDepth)
	if err != nil {
		return nil, err
	}

	controls := controlPoints(samples)
	depths := mergeDepths(grid, controls)

	buckets := map[int]float64{}
	claimed := map[int]bool{}
	for _, d := range depths {
		b, ok := domain.BucketIndex(d, resolution)
		if !ok || claimed[b] {
			continue
		}
		claimed[b] = true

		if loss, ok := interpolate(controls, d); ok {
			buckets[b] = loss
		}
	}

	return &domain.LossCurve{
		Name:       name,
		Resolution: resolution,
		Buckets:    buckets,
	}, nil
}

// depthGrid returns 0, res, 2*res, ... strictly below maxDepth. Points are
// computed by multiplication so the grid does not drift.
func depthGrid(resolution, maxDepth float64) ([]float64, error) {
	n := math.Ceil(maxDepth / resolution)
	if n > maxGridPoints {
		return nil, fmt.Errorf("grid of %v points for resolution %v and max depth %v is too large", n, resolution, maxDepth)
	}

	out := make([]float64, 0, int(n))
	for i := 0; ; i++ {
		d := float64(i) * resolution
		if d >= maxDepth {
			break
		}
		out = append(out, d)
	}
	return out, nil
}

// controlPoints sorts samples by depth. A repeated depth keeps the sample
// that appeared first in the file.
func controlPoints(samples []domain.RawCurveSample) []domain.RawCurveSample {
	sorted := make([]domain.RawCurveSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth < sorted[j].Depth
	})

	out := make([]domain.RawCurveSample, 0, len(sorted))
	for _, s := range sorted {
		if len(out) > 0 && out[len(out)-1].Depth == s.Depth {
			continue
		}
		out = append(out, s)
	}
	return out
}

func mergeDepths(grid []float64, controls []domain.RawCurveSample) []float64 {
	all := make([]float64, 0, len(grid)+len(controls))
	all = append(all, grid...)
	for _, c := range controls {
		all = append(all, c.Depth)
	}
	sort.Float64s(all)

	out := make([]float64, 0, len(all))
	for _, d := range all {
		if len(out) > 0 && out[len(out)-1] == d {
			continue
		}
		out = append(out, d)
	}
	return out
}

// interpolate returns the loss at depth d, or false if d is outside the
// controls' depth range.
func interpolate(controls []domain.RawCurveSample, d float64) (float64, bool) {
	i := sort.Search(len(controls), func(i int) bool {
		return controls[i].Depth >= d
	})
	if i == len(controls) {
		return 0, false
	}
	if controls[i].Depth == d {
		return controls[i].Loss, true
	}
	if i == 0 {
		return 0, false
	}

	lo, hi := controls[i-1], controls[i]
	frac := (d - lo.Depth) / (hi.Depth - lo.Depth)
	return lo.Loss + frac*(hi.Loss-lo.Loss), true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
