package vtk

import (
	"fmt"

	"github.com/meshtools/mesh2vtk/mesh"
)

// Converter turns a mesh into a visualization output under a Config.
// A converter owns its configuration and consumes it exactly once.
type Converter interface {
	Convert(m *mesh.Mesh) (*Output, error)
}

// Output describes one converted export: the groups selected along each
// axis and the size of the resulting data.
type Output struct {
	EnergyGroups []mesh.Group
	TimeGroups   []mesh.Group
	Voxels       int
	Arrays       int
}

// PlanConverter is the built-in Converter: it resolves the configured
// index sets against the mesh and reports what an export would contain,
// leaving serialization to external writer implementations.
type PlanConverter struct {
	cfg      Config
	consumed bool
}

// NewPlanConverter creates a converter for the given configuration.
func NewPlanConverter(cfg Config) *PlanConverter {
	return &PlanConverter{cfg: cfg}
}

// Convert computes the export plan for the mesh. Configured group indices
// are checked against the mesh's bin counts here; out-of-range indices
// are a hard error at this boundary.
func (c *PlanConverter) Convert(m *mesh.Mesh) (*Output, error) {
	if c.consumed {
		return nil, ErrConfigConsumed
	}
	c.consumed = true

	energy, err := selectGroups(m.EnergyGroups(), c.cfg.EnergyGroups, "energy")
	if err != nil {
		return nil, err
	}
	time, err := selectGroups(m.TimeGroups(), c.cfg.TimeGroups, "time")
	if err != nil {
		return nil, err
	}

	arrays := len(energy) * len(time)
	if c.cfg.IncludeErrors {
		arrays *= 2
	}

	return &Output{
		EnergyGroups: energy,
		TimeGroups:   time,
		Voxels:       m.NumVoxels(),
		Arrays:       arrays,
	}, nil
}

// selectGroups maps configured bin indices to the mesh's group values.
func selectGroups(groups []mesh.Group, indices []int, axis string) ([]mesh.Group, error) {
	selected := make([]mesh.Group, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(groups) {
			return nil, fmt.Errorf("%s index %d with %d bins: %w", axis, idx, len(groups), ErrIndexRange)
		}
		selected = append(selected, groups[idx])
	}
	return selected, nil
}
