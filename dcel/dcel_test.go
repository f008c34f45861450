package dcel

import (
	"testing"

	"github.com/arl/go-voronoi/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEdgeRejectsIdenticalEndpoints(t *testing.T) {
	d := New(false)
	v, _ := d.VertexAt(geom.New(0, 0), 1e-8)
	_, ok := d.CreateEdge(v, v)
	assert.False(t, ok)
}

func TestVertexAtMergesWithinRadius(t *testing.T) {
	d := New(false)
	a, created := d.VertexAt(geom.New(0, 0), 1e-8)
	require.True(t, created)

	b, created := d.VertexAt(geom.New(1e-9, 0), 1e-8)
	assert.False(t, created)
	assert.Same(t, a, b)

	_, created = d.VertexAt(geom.New(5, 5), 1e-8)
	assert.True(t, created)
}

// TestPostprocessSquareRing builds the edges of a unit square and checks
// the DCEL consistency properties: every half-edge's twin/next/prev form a
// coherent ring around its source vertex.
func TestPostprocessSquareRing(t *testing.T) {
	d := New(false)
	corners := []geom.Point{
		geom.New(0, 0), geom.New(1, 0), geom.New(1, 1), geom.New(0, 1),
	}
	verts := make([]*Vertex, len(corners))
	for i, c := range corners {
		verts[i], _ = d.VertexAt(c, 1e-8)
	}
	for i := range verts {
		j := (i + 1) % len(verts)
		_, ok := d.CreateEdge(verts[i], verts[j])
		require.True(t, ok)
	}

	d.Postprocess()

	for _, e := range d.Edges {
		assert.Same(t, e, e.Twin.Twin)
		assert.Same(t, e.Dest, e.Twin.Src)
		require.NotNil(t, e.Next)
		require.NotNil(t, e.Prev)
		assert.Same(t, e.Dest, e.Next.Src)
		assert.Same(t, e.Src, e.Prev.Dest)
	}

	assert.InDelta(t, 1.0, d.ShortestEdgeLength, 1e-12)
	assert.InDelta(t, 1.0, d.LongestEdgeLength, 1e-12)
}
