package vtk

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/meshtools/mesh2vtk/mesh"
)

// DefaultStem is the file name stem used when the base path has none.
const DefaultStem = "fmesh"

// extensionKey selects an output extension by format and geometry.
type extensionKey struct {
	format   Format
	geometry mesh.Geometry
}

// XML output distinguishes structured from unstructured grids; the legacy
// formats share a single extension regardless of geometry.
var extensions = map[extensionKey]string{
	{XML, mesh.Rectangular}:          "vtr",
	{XML, mesh.Cylindrical}:          "vtu",
	{LegacyASCII, mesh.Rectangular}:  "vtk",
	{LegacyASCII, mesh.Cylindrical}:  "vtk",
	{LegacyBinary, mesh.Rectangular}: "vtk",
	{LegacyBinary, mesh.Cylindrical}: "vtk",
}

// Extension returns the output file extension, without the dot, for the
// given format and geometry.
func Extension(format Format, geometry mesh.Geometry) string {
	if ext, ok := extensions[extensionKey{format, geometry}]; ok {
		return ext
	}
	return "vtk"
}

// OutputPath derives the output file path from a user-supplied base path,
// the mesh's tally identifier and the chosen format. The base path's last
// component names the stem, even with a trailing separator; DefaultStem is
// used when there is none, and the tally id is appended with an
// underscore.
//
// Examples:
//   - ("fmesh", 104, Rectangular, XML) -> "fmesh_104.vtr"
//   - ("out/run", 104, Cylindrical, XML) -> "out/run_104.vtu"
//   - ("out/", 104, Rectangular, XML) -> "out_104.vtr"
//   - ("run", 104, Rectangular, LegacyASCII) -> "run_104.vtk"
func OutputPath(base string, tallyID uint32, geometry mesh.Geometry, format Format) string {
	base = strings.TrimRight(base, string(filepath.Separator))

	name := filepath.Base(base)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" || stem == "." {
		stem = DefaultStem
	}

	file := fmt.Sprintf("%s_%d.%s", stem, tallyID, Extension(format, geometry))
	dir := filepath.Dir(base)
	if dir == "." {
		return file
	}
	return filepath.Join(dir, file)
}
