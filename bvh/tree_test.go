package bvh

import (
	"testing"

	"github.com/arl/go-voronoi/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countInvariant(t *testing.T, n *Node[int]) {
	t.Helper()
	if n == nil || n.Leaf {
		return
	}
	assert.Equal(t, int32(1)+n.Left.Count+n.Right.Count, n.Count)
	countInvariant(t, n.Left)
	countInvariant(t, n.Right)
}

func TestTreeCountInvariant(t *testing.T) {
	tree := New[int](false)
	pts := []geom.Point{
		geom.New(0, 0), geom.New(1, 0), geom.New(2, 2),
		geom.New(-1, 3), geom.New(5, 5), geom.New(4, -2),
	}
	for i, p := range pts {
		tree.Insert(p, i)
	}
	countInvariant(t, tree.Root)
	assert.Equal(t, int32(2*len(pts)-1), tree.Root.Count)
}

func TestTreeQueryExact(t *testing.T) {
	tree := New[string](false)
	tree.Insert(geom.New(1, 1), "a")
	tree.Insert(geom.New(10, 10), "b")

	n, ok := tree.Find(geom.New(1, 1))
	require.True(t, ok)
	assert.Equal(t, "a", n.Value)

	_, ok = tree.Find(geom.New(1.5, 1.5))
	assert.False(t, ok)
}

func TestTreeQueryWithinRadiusMerges(t *testing.T) {
	tree := New[int](false)
	tree.Insert(geom.New(0, 0), 1)

	n, inserted := tree.QueryOrInsert(geom.New(1e-9, 0), 1e-8, 2)
	assert.False(t, inserted)
	assert.Equal(t, 1, n.Value)

	_, inserted = tree.QueryOrInsert(geom.New(5, 5), 1e-8, 3)
	assert.True(t, inserted)
}

func TestTreeBalancedHeightInvariant(t *testing.T) {
	tree := New[int](true)
	for i := 0; i < 64; i++ {
		tree.Insert(geom.New(float64(i), float64(i)*float64(i)), i)
		checkBalanceLoose(t, tree.Root)
	}
}

// checkBalanceLoose is a loose sanity check on the root: the SAH+rotation
// scheme is a heuristic, not a strict AVL guarantee, so this only asserts
// that the root's |imbalance| does not exceed its node count rather than an
// exact |imbalance| <= 1 bound (that strict bound is asserted instead on the
// avltree package, which backs the beachline).
func checkBalanceLoose(t *testing.T, n *Node[int]) {
	t.Helper()
	if n == nil || n.Leaf {
		return
	}
	require.LessOrEqual(t, int(imbalance(n)), int(n.Count))
}

func TestAABBEmptyUnion(t *testing.T) {
	empty := Empty()
	p := geom.New(3, 4)
	u := empty.Union(FromPoint(p))
	assert.Equal(t, FromPoint(p), u)
}

func TestAABBSurfaceAreaFormula(t *testing.T) {
	b := AABB{MinX: 0, MaxX: 2, MinY: 0, MaxY: 3}
	dx := 2.0 + 2*skin
	dy := 3.0 + 2*skin
	want := 2 * (dx + dy)
	assert.InDelta(t, want, b.SurfaceArea(), 1e-15)
}
