package mesh

import (
	"fmt"
	"math"
	"sort"
)

// Group identifies one bin along the energy or time axis of a mesh tally.
// It is either a physical bin, tagged with the bin's upper edge value
// (MeV for energy, shakes for time), or the synthetic "Total" bin that
// aggregates all others.
type Group struct {
	value float64
	total bool
}

// groupTolerance is the relative tolerance used when comparing the values
// of two physical groups. Tally files are written with limited precision,
// so exact float comparison would reject legitimate matches.
const groupTolerance = 1e-6

// Total returns the aggregate Total group.
func Total() Group {
	return Group{total: true}
}

// Value returns the group for a physical bin with the given upper edge.
func Value(v float64) Group {
	return Group{value: v}
}

// IsTotal reports whether g is the aggregate Total group.
func (g Group) IsTotal() bool {
	return g.total
}

// Edge returns the upper edge value of a physical group.
// The result is meaningless for the Total group.
func (g Group) Edge() float64 {
	return g.value
}

// Less orders groups by their underlying value, with Total sorting last.
func (g Group) Less(other Group) bool {
	switch {
	case g.total:
		return false
	case other.total:
		return true
	default:
		return g.value < other.value
	}
}

// Equal reports whether two groups identify the same bin. Physical groups
// match within a relative tolerance of their values.
func (g Group) Equal(other Group) bool {
	if g.total || other.total {
		return g.total == other.total
	}
	return approxEqual(g.value, other.value)
}

func (g Group) String() string {
	if g.total {
		return "Total"
	}
	return fmt.Sprintf("%g", g.value)
}

// approxEqual compares two floats within the relative group tolerance.
func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= scale*groupTolerance
}

// SortGroups sorts groups ascending by value, Total last, and removes
// duplicates in place. The returned slice aliases the input.
func SortGroups(groups []Group) []Group {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Less(groups[j])
	})

	out := groups[:0]
	for _, g := range groups {
		if len(out) > 0 && out[len(out)-1].Equal(g) {
			continue
		}
		out = append(out, g)
	}
	return out
}
