package calculator

import (
	"fmt"
	"math"

	"floodloss/internal/domain"

	"github.com/maja42/goval"
)

// DepthExpression rewrites raw depths before evaluation, e.g.
// "depth <= 0.0 ? 0.0 : depth" to clamp negative sampled depths to dry.
// The raw depth is bound to the variable "depth".
type DepthExpression struct {
	expression string
	eval       *goval.Evaluator
}

func NewDepthExpression(expression string) (*DepthExpression, error) {
	e := &DepthExpression{
		expression: expression,
		eval:       goval.NewEvaluator(),
	}
	// fail at startup rather than on the first asset
	for _, probe := range []float64{-1, 0, 1} {
		if _, err := e.Apply(probe); err != nil {
			return nil, fmt.Errorf("invalid depth expression %q: %w", expression, err)
		}
	}
	return e, nil
}

func depthFunctions() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return 0, fmt.Errorf("max needs 2 args, got %d", len(args))
			}
			a, b, err := twoFloats(args)
			if err != nil {
				return 0, err
			}
			return math.Max(a, b), nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return 0, fmt.Errorf("min needs 2 args, got %d", len(args))
			}
			a, b, err := twoFloats(args)
			if err != nil {
				return 0, err
			}
			return math.Min(a, b), nil
		},
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return 0, fmt.Errorf("abs needs 1 arg, got %d", len(args))
			}
			a, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			return math.Abs(a), nil
		},
	}
}

func (e *DepthExpression) Apply(depth float64) (float64, error) {
	variables := map[string]interface{}{
		"depth": depth,
	}
	result, err := e.eval.Evaluate(e.expression, variables, depthFunctions())
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate depth expression: %w", err)
	}

	r, err := toFloat(result)
	if err != nil {
		return 0, err
	}
	if math.IsInf(r, 0) {
		return 0, fmt.Errorf("calculated infinity as depth expression result")
	}
	return r, nil
}

// ApplyToAssets rewrites every present depth of the given intensities in
// place. Missing depths stay missing.
func (e *DepthExpression) ApplyToAssets(assets []*domain.Asset, intensities []string) error {
	for _, a := range assets {
		for _, intensity := range intensities {
			d := a.Depth(intensity)
			if d == nil || math.IsNaN(*d) {
				continue
			}
			v, err := e.Apply(*d)
			if err != nil {
				return fmt.Errorf("failed to transform %s depth of asset %s: %w", intensity, a.ID, err)
			}
			a.Depths[intensity] = &v
		}
	}
	return nil
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func twoFloats(args []interface{}) (float64, float64, error) {
	a, err := toFloat(args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := toFloat(args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
