package voronoi

import "github.com/arl/go-voronoi/geom"

// Config configures a diagram build.
type Config struct {
	// Sites is the input site list. Sites are not required to be
	// pre-sorted; Preprocess snaps near-coincident coordinates and sorts
	// internally.
	Sites []geom.Point

	// Balanced selects the vertex BVH's rotation-balanced variant. The
	// default, SAH-only insertion without rebalancing, is adequate for
	// the typical sweepline access pattern (vertices are queried and
	// inserted in roughly the order the sweepline visits them).
	Balanced bool

	// MergeRadius is the tolerance within which two computed vertices are
	// considered the same DCEL vertex. Defaults to 1e-8.
	MergeRadius float64

	// BoundsScale inflates the bounding rectangle unbounded edges are
	// closed against. Clamped to a minimum of 1.1; defaults to 1.1.
	BoundsScale float64

	// ValidateEuler requests the postprocess step compute Euler's
	// identity (V+1) - E + F = 2 over the finished diagram and record a
	// ValidationReport.
	ValidateEuler bool

	// Logf, if non-nil, receives progress and warning messages (skipped
	// duplicate sites, breakpoints left open at postprocess, Euler
	// validation results).
	Logf func(format string, args ...any)
}

func (c *Config) setDefaults() {
	if c.MergeRadius <= 0 {
		c.MergeRadius = 1e-8
	}
	if c.BoundsScale < 1.1 {
		c.BoundsScale = 1.1
	}
	if c.Logf == nil {
		c.Logf = func(string, ...any) {}
	}
}

// ValidationReport is the result of an Euler's-identity check requested via
// Config.ValidateEuler.
type ValidationReport struct {
	Vertices           int
	Edges              int
	Faces              int
	Satisfied          bool
	ShortestEdgeLength float64
	LongestEdgeLength  float64
}
