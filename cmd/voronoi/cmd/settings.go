package cmd

// Settings is the YAML-serializable subset of voronoi.Config exposed to
// the command line, mirroring the way sample/solomesh and sample/tilemesh
// each carry their own Settings struct prefilled by NewSettings.
type Settings struct {
	// Balanced selects the vertex BVH's rotation-balanced variant.
	Balanced bool `yaml:"balanced"`

	// MergeRadius is the tolerance within which two computed vertices
	// collapse into one. [Limit: > 0]
	MergeRadius float64 `yaml:"merge_radius"`

	// BoundsScale inflates the bounding rectangle unbounded edges are
	// closed against. [Limit: >= 1.1]
	BoundsScale float64 `yaml:"bounds_scale"`

	// ValidateEuler requests an Euler's-identity check once the diagram is
	// built, logged as a warning on mismatch.
	ValidateEuler bool `yaml:"validate_euler"`
}

// NewSettings returns Settings filled with voronoi.Config's own defaults,
// except that ValidateEuler is on (voronoi.Config leaves it off).
func NewSettings() Settings {
	return Settings{
		Balanced:      false,
		MergeRadius:   1e-8,
		BoundsScale:   1.1,
		ValidateEuler: true,
	}
}
