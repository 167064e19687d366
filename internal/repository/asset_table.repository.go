package repository

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"floodloss/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// AssetSchema tells the asset table repository which columns carry the
// fields the loss engine reads and how the derived columns are named.
type AssetSchema struct {
	Naming      domain.ColumnNaming
	Intensities []string
}

type AssetTableRepository interface {
	Read(path string) (*domain.AssetTable, error)
	Write(path string, table *domain.AssetTable) error
}

func NewAssetTableRepository(schema AssetSchema) AssetTableRepository {
	return AssetTableRepositoryHandler{
		Schema: schema,
	}
}

type AssetTableRepositoryHandler struct {
	Schema AssetSchema
}

func (h AssetTableRepositoryHandler) Read(path string) (*domain.AssetTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset table: %w", err)
	}
	defer f.Close()

	rows, err := gocsv.LazyCSVReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read asset table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("asset table %s has no header", path)
	}

	header := rows[0]
	colIndex := map[string]int{}
	for i, c := range header {
		colIndex[strings.TrimSpace(c)] = i
	}

	naming := h.Schema.Naming
	required := []string{naming.ValueColumn, naming.CurveColumn}
	for _, intensity := range h.Schema.Intensities {
		required = append(required, naming.DepthColumn(intensity))
	}
	for _, c := range required {
		if _, ok := colIndex[c]; !ok {
			return nil, fmt.Errorf("asset table %s is missing column %s", path, c)
		}
	}

	table := &domain.AssetTable{
		Columns: header,
		Assets:  make([]*domain.Asset, 0, len(rows)-1),
	}
	for lineNo, row := range rows[1:] {
		asset, err := h.parseRow(header, colIndex, row)
		if err != nil {
			return nil, fmt.Errorf("asset table %s line %d: %w", path, lineNo+2, err)
		}
		table.Assets = append(table.Assets, asset)
	}

	return table, nil
}

func (h AssetTableRepositoryHandler) parseRow(header []string, colIndex map[string]int, row []string) (*domain.Asset, error) {
	naming := h.Schema.Naming
	cell := func(col string) string {
		i, ok := colIndex[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	value, err := parseNumber(cell(naming.ValueColumn))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", naming.ValueColumn, err)
	}
	if value == nil {
		return nil, fmt.Errorf("missing %s", naming.ValueColumn)
	}
	if *value < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %v", naming.ValueColumn, *value)
	}

	id := ""
	if naming.IDColumn != "" {
		id = cell(naming.IDColumn)
	}
	if id == "" {
		id = uuid.New().String()
	}

	asset := &domain.Asset{
		ID:         id,
		Value:      *value,
		CurveID:    cell(naming.CurveColumn),
		Depths:     map[string]*float64{},
		Attributes: map[string]string{},
	}
	for _, intensity := range h.Schema.Intensities {
		col := naming.DepthColumn(intensity)
		depth, err := parseNumber(cell(col))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", col, err)
		}
		asset.Depths[intensity] = depth
	}
	for i, c := range header {
		if i < len(row) {
			asset.Attributes[c] = row[i]
		}
	}
	if _, ok := colIndex[naming.IDColumn]; ok && naming.IDColumn != "" {
		asset.Attributes[naming.IDColumn] = id
	}

	return asset, nil
}

// parseNumber returns nil for empty and NaN cells.
func parseNumber(s string) (*float64, error) {
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("value %s is not finite", s)
	}
	return &f, nil
}

// Write stores the table with its source columns first, in source order,
// followed by the percentage and value loss columns of every intensity.
// Missing values are written as empty cells. Derived columns already in
// the source header are overwritten in place.
func (h AssetTableRepositoryHandler) Write(path string, table *domain.AssetTable) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create asset map %s: %w", path, err)
	}
	defer f.Close()

	naming := h.Schema.Naming
	header := append([]string{}, table.Columns...)
	inHeader := map[string]bool{}
	for _, c := range header {
		inHeader[c] = true
	}
	derived := map[string]func(a *domain.Asset) *float64{}
	for _, intensity := range h.Schema.Intensities {
		intensity := intensity
		derived[naming.PercLossColumn(intensity)] = func(a *domain.Asset) *float64 {
			return a.PercLoss[intensity]
		}
		derived[naming.LossValueColumn(intensity)] = func(a *domain.Asset) *float64 {
			return a.LossValue[intensity]
		}
		for _, c := range []string{naming.PercLossColumn(intensity), naming.LossValueColumn(intensity)} {
			if !inHeader[c] {
				header = append(header, c)
				inHeader[c] = true
			}
		}
	}

	w := gocsv.DefaultCSVWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, a := range table.Assets {
		row := make([]string, len(header))
		for i, c := range header {
			if fn, ok := derived[c]; ok {
				row[i] = formatNumber(fn(a))
				continue
			}
			row[i] = a.Attributes[c]
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write asset map %s: %w", path, err)
	}

	return nil
}

func formatNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
