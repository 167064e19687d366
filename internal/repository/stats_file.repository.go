package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type StatsFileRepository interface {
	Write(path string, stats interface{}) error
}

func NewStatsFileRepository() StatsFileRepository {
	return StatsFileRepositoryHandler{}
}

type StatsFileRepositoryHandler struct{}

func (h StatsFileRepositoryHandler) Write(path string, stats interface{}) error {
	bytes, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err = os.WriteFile(path, bytes, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write stats to %s: %w", path, err)
	}

	return nil
}
