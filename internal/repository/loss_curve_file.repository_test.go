package repository

import (
	"os"
	"path/filepath"
	"testing"

	"floodloss/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLossCurveFileRepositoryHandler(t *testing.T) {
	t.Run("list filters by extension", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"low_rise.csv", "high_rise.csv", "readme.md", "low_rise.csv.bak"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("0,0\n"), 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0o755))

		paths, err := NewLossCurveFileRepository().List(dir, "csv")
		require.NoError(t, err)
		require.Equal(
			t,
			[]string{
				filepath.Join(dir, "high_rise.csv"),
				filepath.Join(dir, "low_rise.csv"),
			},
			paths,
		)
	})

	t.Run("read headerless pairs", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "low_rise.csv")
		require.NoError(t, os.WriteFile(path, []byte("# depth in cm\n0, 0.0\n100, 0.5\n200, 1.0\n"), 0o644))

		samples, err := NewLossCurveFileRepository().Read(path)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.RawCurveSample{
					{Depth: 0, Loss: 0},
					{Depth: 100, Loss: 0.5},
					{Depth: 200, Loss: 1},
				},
				samples,
			),
		)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("0,0,0\n"), 0o644))

		_, err := NewLossCurveFileRepository().Read(path)
		require.Error(t, err)
	})

	t.Run("curve name", func(t *testing.T) {
		require.Equal(t, "low_rise", CurveName("/data/curves/low_rise.csv"))
	})
}
