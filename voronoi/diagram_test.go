package voronoi

import (
	"testing"

	"github.com/arl/go-voronoi/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns four sites at the corners of a centered square, the
// textbook four-site case: two circle events fire at the same center and
// merge into one vertex, with four edges radiating from it.
func square() []geom.Point {
	return []geom.Point{
		geom.New(-1, -1), geom.New(1, -1),
		geom.New(1, 1), geom.New(-1, 1),
	}
}

func build(t *testing.T, sites []geom.Point, cfg Config) (*Diagram, Status) {
	t.Helper()
	cfg.Sites = sites
	cfg.ValidateEuler = true
	d := New(cfg)
	d.Preprocess()
	status := d.Run()
	require.False(t, status.Failed(), "run failed: %v", status)
	status |= d.Postprocess()
	require.False(t, status.Failed(), "postprocess failed: %v", status)
	return d, status
}

func TestDiagramSquareProducesOneVertex(t *testing.T) {
	d, _ := build(t, square(), Config{})

	assert.Equal(t, 4, d.NSites())
	assert.Equal(t, 1, d.NVertices())
	require.NotNil(t, d.Validation())
	assert.True(t, d.Validation().Satisfied)

	v := d.DCEL().Vertices[0]
	assert.InDelta(t, 0, v.Point.X, geom.Epsilon*10)
	assert.InDelta(t, 0, v.Point.Y, geom.Epsilon*10)
}

func TestDiagramDuplicateSiteSkipped(t *testing.T) {
	sites := append(square(), geom.New(-1, -1))
	d, status := build(t, sites, Config{})

	assert.Equal(t, 4, d.NSites())
	assert.True(t, status.Detail(DuplicateSite))
}

// TestDiagramThreeSitesOneCircumcenter checks the textbook three-site case:
// any three non-collinear sites produce exactly one vertex, at their
// circumcenter, and three edges radiating out from it.
func TestDiagramThreeSitesOneCircumcenter(t *testing.T) {
	d, _ := build(t, []geom.Point{
		geom.New(0, 0), geom.New(10, 0), geom.New(5, 10),
	}, Config{})

	assert.Equal(t, 3, d.NSites())
	assert.Equal(t, 1, d.NVertices())
	assert.Equal(t, 3, d.NEdges())
	require.NotNil(t, d.Validation())
	assert.True(t, d.Validation().Satisfied)
}

func TestDiagramCollinearSitesDoNotPanic(t *testing.T) {
	d, _ := build(t, []geom.Point{
		geom.New(0, 0), geom.New(1, 0), geom.New(2, 0),
	}, Config{})

	assert.Equal(t, 3, d.NSites())
	assert.Equal(t, 0, d.NVertices())
}

func TestDiagramManySitesEulerAndTwinLinks(t *testing.T) {
	sites := []geom.Point{
		geom.New(0, 0), geom.New(4, 0), geom.New(8, 0),
		geom.New(2, 5), geom.New(6, 5), geom.New(4, 9),
	}
	d, _ := build(t, sites, Config{})

	assert.Equal(t, len(sites), d.NSites())
	require.NotNil(t, d.Validation())
	assert.True(t, d.Validation().Satisfied,
		"V=%d E=%d F=%d", d.Validation().Vertices, d.Validation().Edges, d.Validation().Faces)

	for _, he := range d.DCEL().Edges {
		assert.NotNil(t, he.Twin)
		assert.Equal(t, he, he.Twin.Twin)
	}
}

func TestDiagramBalancedConfig(t *testing.T) {
	d, _ := build(t, square(), Config{Balanced: true})
	assert.Equal(t, 1, d.NVertices())
}
