package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"floodloss/internal/domain"

	"github.com/gocarina/gocsv"
)

type LossCurveFileRepository interface {
	// List returns the paths of the files in directory with the given
	// extension, sorted by file name.
	List(directory, extension string) ([]string, error)
	Read(path string) ([]domain.RawCurveSample, error)
}

func NewLossCurveFileRepository() LossCurveFileRepository {
	return LossCurveFileRepositoryHandler{}
}

type LossCurveFileRepositoryHandler struct{}

func (h LossCurveFileRepositoryHandler) List(directory, extension string) ([]string, error) {
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list loss curves in %s: %w", directory, err)
	}

	out := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != extension {
			continue
		}
		out = append(out, filepath.Join(directory, e.Name()))
	}

	return out, nil
}

// Read parses a headerless two column (depth, loss) file.
func (h LossCurveFileRepositoryHandler) Read(path string) ([]domain.RawCurveSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'
	r.FieldsPerRecord = 2

	rows := []domain.RawCurveSample{}
	err = gocsv.UnmarshalCSVWithoutHeaders(r, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CurveName is the key a curve file is stored under: its base name without
// the extension.
func CurveName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
