package mesh

import (
	"fmt"
)

// Geometry is the spatial layout of a mesh tally.
type Geometry int

const (
	// Rectangular meshes use cartesian (x, y, z) voxels.
	Rectangular Geometry = iota
	// Cylindrical meshes use (r, z, theta) voxels.
	Cylindrical
)

func (g Geometry) String() string {
	switch g {
	case Rectangular:
		return "rectangular"
	case Cylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("geometry(%d)", int(g))
	}
}

// ParseGeometry converts a geometry name to its Geometry value.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "rectangular", "rec", "xyz":
		return Rectangular, nil
	case "cylindrical", "cyl", "rzt":
		return Cylindrical, nil
	default:
		return 0, fmt.Errorf("%w: unknown geometry %q", ErrInvalidMesh, s)
	}
}

// Mesh is a single mesh tally: voxel results binned by energy group and
// time group. The last group along each axis is always the aggregate
// Total bin.
//
// Results are stored flat, indexed as (energy, time, voxel) with voxel
// varying fastest. Errors are relative and parallel to the results.
type Mesh struct {
	id       uint32
	geometry Geometry
	energy   []Group
	time     []Group
	voxels   int
	results  []float64
	errors   []float64
}

// New builds a mesh from its bin edges and flat result arrays.
//
// Edges are the upper bin boundaries along each axis, ascending. A Total
// group is appended after the physical groups; an axis with fewer than
// two edges collapses to a single group labelled Total. The results and
// errors slices must hold voxels * energyBins * timeBins entries each.
func New(id uint32, geometry Geometry, energyEdges, timeEdges []float64, voxels int, results, relErrors []float64) (*Mesh, error) {
	m := &Mesh{
		id:       id,
		geometry: geometry,
		energy:   binGroups(energyEdges),
		time:     binGroups(timeEdges),
		voxels:   voxels,
		results:  results,
		errors:   relErrors,
	}

	want := voxels * len(m.energy) * len(m.time)
	if voxels <= 0 {
		return nil, fmt.Errorf("%w: voxel count %d", ErrInvalidMesh, voxels)
	}
	if len(results) != want {
		return nil, fmt.Errorf("%w: %d results for %d bins", ErrInvalidMesh, len(results), want)
	}
	if len(relErrors) != want {
		return nil, fmt.Errorf("%w: %d errors for %d bins", ErrInvalidMesh, len(relErrors), want)
	}
	return m, nil
}

// binGroups labels the bins of one axis. Axes with a single bin are
// labelled Total for consistency with multi-bin meshes.
func binGroups(edges []float64) []Group {
	if len(edges) <= 1 {
		return []Group{Total()}
	}
	groups := make([]Group, 0, len(edges)+1)
	for _, e := range edges {
		groups = append(groups, Value(e))
	}
	return append(groups, Total())
}

// TallyID returns the tally identifier, e.g. 104 for FMESH104:n.
func (m *Mesh) TallyID() uint32 {
	return m.id
}

// Geometry returns the spatial layout of the mesh.
func (m *Mesh) Geometry() Geometry {
	return m.geometry
}

// NumEnergyBins returns the number of energy groups, Total included.
func (m *Mesh) NumEnergyBins() int {
	return len(m.energy)
}

// NumTimeBins returns the number of time groups, Total included.
func (m *Mesh) NumTimeBins() int {
	return len(m.time)
}

// NumVoxels returns the number of spatial voxels.
func (m *Mesh) NumVoxels() int {
	return m.voxels
}

// EnergyGroups returns a copy of the energy groups in bin order.
func (m *Mesh) EnergyGroups() []Group {
	return append([]Group(nil), m.energy...)
}

// TimeGroups returns a copy of the time groups in bin order.
func (m *Mesh) TimeGroups() []Group {
	return append([]Group(nil), m.time...)
}

// EnergyIndexOf returns the energy bin index owning the given group.
// Fails with ErrGroupNotFound when no bin matches.
func (m *Mesh) EnergyIndexOf(g Group) (int, error) {
	return indexOf(m.energy, g, "energy")
}

// TimeIndexOf returns the time bin index owning the given group.
// Fails with ErrGroupNotFound when no bin matches.
func (m *Mesh) TimeIndexOf(g Group) (int, error) {
	return indexOf(m.time, g, "time")
}

func indexOf(groups []Group, g Group, axis string) (int, error) {
	for i, candidate := range groups {
		if candidate.Equal(g) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s group %s: %w", axis, g, ErrGroupNotFound)
}

// Result returns the tally result for one (energy, time, voxel) bin.
func (m *Mesh) Result(energy, time, voxel int) float64 {
	return m.results[m.flatIndex(energy, time, voxel)]
}

// RelError returns the relative error for one (energy, time, voxel) bin.
func (m *Mesh) RelError(energy, time, voxel int) float64 {
	return m.errors[m.flatIndex(energy, time, voxel)]
}

func (m *Mesh) flatIndex(energy, time, voxel int) int {
	return (energy*len(m.time)+time)*m.voxels + voxel
}

// Scale multiplies every result by the given factor. Errors are relative
// and therefore unchanged.
func (m *Mesh) Scale(factor float64) {
	for i := range m.results {
		m.results[i] *= factor
	}
}

// String returns a one-line summary of the mesh, used for debug logging.
func (m *Mesh) String() string {
	return fmt.Sprintf("fmesh %d: %s, %d energy bins, %d time bins, %d voxels",
		m.id, m.geometry, len(m.energy), len(m.time), m.voxels)
}
