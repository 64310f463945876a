// Package mesh holds the in-memory model of a single mesh tally: its bin
// structure along the energy and time axes, the voxel results, and the
// group lookups that the target resolution engine queries.
package mesh

import "errors"

// Common errors
var (
	ErrGroupNotFound = errors.New("no bin matches group")
	ErrNotSnapshot   = errors.New("not a mesh snapshot file")
	ErrTallyNotFound = errors.New("tally not found in snapshot")
	ErrInvalidMesh   = errors.New("invalid mesh definition")
)
