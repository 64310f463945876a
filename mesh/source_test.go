package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

const validSnapshot = `{
  "tallies": [
    {
      "tally": 104,
      "geometry": "rectangular",
      "energy_edges": [0.1, 1.0, 20.0],
      "time_edges": [],
      "voxels": 2,
      "results": [0, 1, 2, 3, 4, 5, 6, 7],
      "errors": [0, 0, 0, 0, 0, 0, 0, 0]
    },
    {
      "tally": 214,
      "geometry": "cylindrical",
      "energy_edges": [],
      "time_edges": [],
      "voxels": 1,
      "results": [1.5],
      "errors": [0.1]
    }
  ]
}`

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, validSnapshot)

	m, err := Load(path, 104)
	require.NoError(t, err)
	assert.Equal(t, uint32(104), m.TallyID())
	assert.Equal(t, Rectangular, m.Geometry())
	assert.Equal(t, 4, m.NumEnergyBins())
	assert.Equal(t, 1, m.NumTimeBins())

	m, err = Load(path, 214)
	require.NoError(t, err)
	assert.Equal(t, Cylindrical, m.Geometry())
	assert.Equal(t, 1, m.NumEnergyBins())
}

func TestLoadTallyNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(writeSnapshot(t, validSnapshot), 999)
	assert.ErrorIs(t, err, ErrTallyNotFound)
}

func TestLoadNotSnapshot(t *testing.T) {
	t.Parallel()

	_, err := Load(writeSnapshot(t, "mesh tally data"), 104)
	assert.ErrorIs(t, err, ErrNotSnapshot)

	_, err = Load(writeSnapshot(t, `{"tallies": []}`), 104)
	assert.ErrorIs(t, err, ErrNotSnapshot)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), 104)
	assert.Error(t, err)
}

func TestLoadReportsAllProblems(t *testing.T) {
	t.Parallel()

	// Bad geometry, descending edges and a result shape mismatch should
	// all be reported together.
	doc := `{
  "tallies": [
    {
      "tally": 104,
      "geometry": "spherical",
      "energy_edges": [20.0, 1.0],
      "time_edges": [],
      "voxels": 1,
      "results": [0],
      "errors": [0, 0]
    }
  ]
}`
	_, err := Load(writeSnapshot(t, doc), 104)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMesh)
	assert.Contains(t, err.Error(), "geometry")
	assert.Contains(t, err.Error(), "not ascending")
	assert.Contains(t, err.Error(), "errors")
}
