package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mesh2vtk.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestNew(t *testing.T) {
	t.Parallel()

	d := New()
	assert.Equal(t, "fmesh", d.Output)
	assert.Equal(t, "xml", d.Format)
	assert.Equal(t, "big-endian", d.Endian)
	assert.Equal(t, "lzma", d.Compressor)
	assert.Equal(t, 1, d.Resolution)
	assert.Equal(t, 1.0, d.Scale)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output = "shield"
format = "legacy-ascii"
compressor = "none"
scale = 6.241e12
`)

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "shield", d.Output)
	assert.Equal(t, "legacy-ascii", d.Format)
	assert.Equal(t, "none", d.Compressor)
	assert.Equal(t, 6.241e12, d.Scale)

	// Keys the file omits keep their built-in defaults.
	assert.Equal(t, "big-endian", d.Endian)
	assert.Equal(t, 1, d.Resolution)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "output = "))
	assert.Error(t, err)
}
