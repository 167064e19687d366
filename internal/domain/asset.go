package domain

import "math"

// Asset is one row of the asset table. Depths, PercLoss and LossValue are
// keyed by intensity; a nil entry is a missing value.
type Asset struct {
	ID      string
	Value   float64
	CurveID string
	Depths  map[string]*float64

	PercLoss  map[string]*float64
	LossValue map[string]*float64

	// columns the engine does not read, carried through to the output
	Attributes map[string]string
}

func (a Asset) Depth(intensity string) *float64 {
	if a.Depths == nil {
		return nil
	}
	return a.Depths[intensity]
}

// IsFlooded reports whether the raw depth for the intensity is present and
// non-zero. The loss value is irrelevant. A missing or NaN depth is not
// flooded, unlike a plain truthiness count over the depth column, which
// would count NaN.
func (a Asset) IsFlooded(intensity string) bool {
	d := a.Depth(intensity)
	return d != nil && !math.IsNaN(*d) && *d != 0
}

// ColumnNaming holds the column names and suffixes used to lay out the
// augmented asset table and the statistics record.
type ColumnNaming struct {
	IDColumn        string
	ValueColumn     string
	CurveColumn     string
	IntensitySuffix string
	PercLossSuffix  string
	LossValueSuffix string
}

func (n ColumnNaming) DepthColumn(intensity string) string {
	return intensity + n.IntensitySuffix
}

func (n ColumnNaming) PercLossColumn(intensity string) string {
	return intensity + n.PercLossSuffix
}

func (n ColumnNaming) LossValueColumn(intensity string) string {
	return intensity + n.LossValueSuffix
}

// AssetTable is the in-memory asset map handed over by the I/O layer.
// Columns keeps the source header order so passthrough columns can be
// written back in place.
type AssetTable struct {
	Columns []string
	Assets  []*Asset
}
