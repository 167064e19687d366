package calculator

import (
	"errors"
	"sort"

	"floodloss/internal/domain"
	"floodloss/internal/repository"

	"go.uber.org/zap"
)

// CurveStore holds the resampled loss curves. It is read-only once built
// and safe for concurrent reads.
type CurveStore interface {
	Get(name string) (*domain.LossCurve, bool)
	Names() []string
	Resolution() float64
}

type curveStoreHandler struct {
	Curves         map[string]*domain.LossCurve
	BucketWidth    float64
	sortedCurveIDs []string
}

func NewCurveStore(resolution float64, curves map[string]*domain.LossCurve) CurveStore {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)

	return curveStoreHandler{
		Curves:         curves,
		BucketWidth:    resolution,
		sortedCurveIDs: names,
	}
}

func (h curveStoreHandler) Get(name string) (*domain.LossCurve, bool) {
	c, ok := h.Curves[name]
	return c, ok
}

func (h curveStoreHandler) Names() []string {
	out := make([]string, len(h.sortedCurveIDs))
	copy(out, h.sortedCurveIDs)
	return out
}

func (h curveStoreHandler) Resolution() float64 {
	return h.BucketWidth
}

type CurveStoreConfig struct {
	Directory  string
	Extension  string
	Resolution float64
	MaxDepth   float64
}

// LoadAll builds one curve per matching file in the configured directory,
// keyed by the file's base name. Files that cannot be parsed are logged and
// skipped. Only failing to list the directory is an error.
func LoadAll(cfg CurveStoreConfig, repo repository.LossCurveFileRepository, log *zap.SugaredLogger) (map[string]*domain.LossCurve, error) {
	paths, err := repo.List(cfg.Directory, cfg.Extension)
	if err != nil {
		return nil, err
	}

	curves := map[string]*domain.LossCurve{}
	for _, path := range paths {
		curve, err := loadCurve(cfg, repo, path)
		if err != nil {
			parseErr := domain.CurveParseError{}
			if errors.As(err, &parseErr) {
				log.Warnw("skipping loss curve", "path", path, "error", parseErr.Err)
				continue
			}
			return nil, err
		}
		if _, ok := curves[curve.Name]; ok {
			log.Warnw("loss curve loaded twice, keeping the last one", "curve", curve.Name, "path", path)
		}
		curves[curve.Name] = curve
	}

	log.Infow("loaded loss curves", "directory", cfg.Directory, "count", len(curves))
	return curves, nil
}

func loadCurve(cfg CurveStoreConfig, repo repository.LossCurveFileRepository, path string) (*domain.LossCurve, error) {
	samples, err := repo.Read(path)
	if err != nil {
		return nil, domain.CurveParseError{Path: path, Err: err}
	}

	curve, err := BuildLossCurve(repository.CurveName(path), samples, cfg.Resolution, cfg.MaxDepth)
	if err != nil {
		return nil, domain.CurveParseError{Path: path, Err: err}
	}

	return curve, nil
}

func LoadCurveStore(cfg CurveStoreConfig, repo repository.LossCurveFileRepository, log *zap.SugaredLogger) (CurveStore, error) {
	curves, err := LoadAll(cfg, repo, log)
	if err != nil {
		return nil, err
	}
	return NewCurveStore(cfg.Resolution, curves), nil
}
