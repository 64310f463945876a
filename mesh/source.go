package mesh

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
)

// snapshot is the JSON document holding one or more mesh tallies. It is a
// plain interchange layout, not the tally file's native format: the native
// reader lives outside this module and produces these documents.
type snapshot struct {
	Tallies []tallySnapshot `json:"tallies"`
}

// tallySnapshot is one mesh tally within a snapshot document.
type tallySnapshot struct {
	Tally       uint32    `json:"tally"`
	Geometry    string    `json:"geometry"`
	EnergyEdges []float64 `json:"energy_edges"`
	TimeEdges   []float64 `json:"time_edges"`
	Voxels      int       `json:"voxels"`
	Results     []float64 `json:"results"`
	Errors      []float64 `json:"errors"`
}

// Load reads the tally with the given identifier from a snapshot file.
func Load(path string, id uint32) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSnapshot, err)
	}
	if len(snap.Tallies) == 0 {
		return nil, fmt.Errorf("%w: no tallies in document", ErrNotSnapshot)
	}

	for _, t := range snap.Tallies {
		if t.Tally == id {
			return t.build()
		}
	}
	return nil, fmt.Errorf("tally %d: %w", id, ErrTallyNotFound)
}

// build validates one tally snapshot and constructs its Mesh. All
// validation problems are collected and reported together.
func (t tallySnapshot) build() (*Mesh, error) {
	var errs *multierror.Error

	geometry, err := ParseGeometry(t.Geometry)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := checkEdges("energy", t.EnergyEdges); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := checkEdges("time", t.TimeEdges); err != nil {
		errs = multierror.Append(errs, err)
	}
	if t.Voxels <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: voxel count %d", ErrInvalidMesh, t.Voxels))
	}

	want := t.Voxels * len(binGroups(t.EnergyEdges)) * len(binGroups(t.TimeEdges))
	if len(t.Results) != want {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d results, want %d", ErrInvalidMesh, len(t.Results), want))
	}
	if len(t.Errors) != want {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d errors, want %d", ErrInvalidMesh, len(t.Errors), want))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("tally %d: %w", t.Tally, err)
	}
	return New(t.Tally, geometry, t.EnergyEdges, t.TimeEdges, t.Voxels, t.Results, t.Errors)
}

// checkEdges verifies bin edges are strictly ascending.
func checkEdges(axis string, edges []float64) error {
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("%w: %s edges not ascending at %d (%g after %g)",
				ErrInvalidMesh, axis, i, edges[i], edges[i-1])
		}
	}
	return nil
}
