package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatsFileRepositoryHandler_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "losses.json")
	err := NewStatsFileRepository().Write(path, map[string]interface{}{
		"value_sum":            100000.0,
		"rp100_flooded_assets": 1,
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := map[string]float64{}
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, map[string]float64{"value_sum": 100000, "rp100_flooded_assets": 1}, out)
}
