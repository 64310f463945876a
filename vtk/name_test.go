package vtk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshtools/mesh2vtk/mesh"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     string
		geometry mesh.Geometry
		format   Format
		want     string
	}{
		{"xml rectangular", "fmesh", mesh.Rectangular, XML, "fmesh_104.vtr"},
		{"xml cylindrical", "fmesh", mesh.Cylindrical, XML, "fmesh_104.vtu"},
		{"legacy ascii rectangular", "fmesh", mesh.Rectangular, LegacyASCII, "fmesh_104.vtk"},
		{"legacy ascii cylindrical", "fmesh", mesh.Cylindrical, LegacyASCII, "fmesh_104.vtk"},
		{"legacy binary rectangular", "fmesh", mesh.Rectangular, LegacyBinary, "fmesh_104.vtk"},
		{"legacy binary cylindrical", "fmesh", mesh.Cylindrical, LegacyBinary, "fmesh_104.vtk"},
		{"extension stripped from base", "out.msht", mesh.Rectangular, XML, "out_104.vtr"},
		{"empty base uses default stem", "", mesh.Rectangular, XML, "fmesh_104.vtr"},
		{"trailing separator names the stem", "out" + string(filepath.Separator), mesh.Rectangular, XML, "out_104.vtr"},
		{"separator only uses default stem", string(filepath.Separator), mesh.Rectangular, XML, "fmesh_104.vtr"},
		{"directory preserved", filepath.Join("out", "run"), mesh.Cylindrical, XML, filepath.Join("out", "run_104.vtu")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, OutputPath(tc.base, 104, tc.geometry, tc.format))
		})
	}
}

func TestExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "vtr", Extension(XML, mesh.Rectangular))
	assert.Equal(t, "vtu", Extension(XML, mesh.Cylindrical))
	assert.Equal(t, "vtk", Extension(LegacyASCII, mesh.Rectangular))
	assert.Equal(t, "vtk", Extension(LegacyBinary, mesh.Cylindrical))
}
