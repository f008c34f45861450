package bvh

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/go-voronoi/geom"
)

// Node is a node of the BVH: a leaf owns a vertex point and its payload, an
// internal owns the union of its children's boxes. Count mirrors
// go-detour's NodePool bookkeeping style (an integer invariant maintained
// on every structural change) but counts subtree size rather than hashed
// graph nodes.
type Node[T any] struct {
	Box    AABB
	Point  geom.Point
	Value  T
	Leaf   bool
	Left   *Node[T]
	Right  *Node[T]
	Parent *Node[T]
	Count  int32
	Height int32
}

// Tree is an online, optionally rotation-balanced bounding-volume
// hierarchy over 2-D points, used as the Voronoi vertex index.
type Tree[T any] struct {
	Root     *Node[T]
	Balanced bool
}

// New returns an empty tree. If balanced is true, Insert rebalances via
// rotation after every insertion (the balanced variant); otherwise the
// tree grows purely by SAH-guided insertion.
func New[T any](balanced bool) *Tree[T] {
	return &Tree[T]{Balanced: balanced}
}

// RotationKind names which (if any) of the four candidate rotations the
// balanced rebalancer chose at a node. rebalance returns it; Insert
// discards it, so callers only see the resulting tree shape.
type RotationKind int

const (
	NoRotation RotationKind = iota
	RotateRightWithLeftLeft
	RotateRightWithLeftRight
	RotateLeftWithRightLeft
	RotateLeftWithRightRight
)

// Insert adds p (with payload v) to the tree and returns its new leaf.
func (t *Tree[T]) Insert(p geom.Point, v T) *Node[T] {
	leaf := &Node[T]{Box: FromPoint(p), Point: p, Value: v, Leaf: true, Count: 1, Height: 0}

	if t.Root == nil {
		t.Root = leaf
		return leaf
	}

	sibling := t.chooseSibling(p)
	t.spliceSibling(sibling, leaf)

	if t.Balanced {
		n := leaf.Parent
		for n != nil {
			t.rebalance(n)
			n = n.Parent
		}
	}
	return leaf
}

// chooseSibling runs a best-first search: a priority queue keyed by
// inherited cost, descending into a node's children only when the lower
// bound on their cost could still beat the best node (leaf or internal)
// found so far.
func (t *Tree[T]) chooseSibling(p geom.Point) *Node[T] {
	pq := newCostQueue[T]()
	pq.push(t.Root, 0)

	best := math.Inf(1)
	var bestNode *Node[T]

	for !pq.empty() {
		e := pq.pop()
		node := e.node

		nodeCost := node.Box.SurfaceArea() + e.inherited
		if nodeCost < best {
			best = nodeCost
			bestNode = node
		}

		if !node.Leaf {
			childInherited := e.inherited + (node.Box.ProposedSurfaceArea(p) - node.Box.SurfaceArea())
			if childInherited < best {
				pq.push(node.Left, childInherited)
				pq.push(node.Right, childInherited)
			}
		}
	}
	assert.True(bestNode != nil, "best-first search must find a sibling in a non-empty tree")
	return bestNode
}

// spliceSibling creates a new internal above sibling with sibling and leaf
// as children, then walks from that internal's parent to the root updating
// the union box, count and height at each step.
func (t *Tree[T]) spliceSibling(sibling, leaf *Node[T]) {
	parent := sibling.Parent
	internal := &Node[T]{
		Box:    sibling.Box.Union(leaf.Box),
		Left:   sibling,
		Right:  leaf,
		Parent: parent,
	}
	sibling.Parent = internal
	leaf.Parent = internal
	updateNode(internal)

	if parent == nil {
		t.Root = internal
		return
	}
	if parent.Left == sibling {
		parent.Left = internal
	} else {
		parent.Right = internal
	}

	for n := parent; n != nil; n = n.Parent {
		updateNode(n)
	}
}

func updateNode[T any](n *Node[T]) {
	n.Box = n.Left.Box.Union(n.Right.Box)
	n.Count = 1 + n.Left.Count + n.Right.Count
	n.Height = 1 + max32(n.Left.Height, n.Right.Height)
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Query performs a radius-pruned depth-first search, returning the first
// leaf within r of p, if any.
func (t *Tree[T]) Query(p geom.Point, r float64) (*Node[T], bool) {
	if t.Root == nil {
		return nil, false
	}
	bound := FromPoint(p).Expand(r)
	return t.query(t.Root, p, r, bound)
}

func (t *Tree[T]) query(n *Node[T], p geom.Point, r float64, bound AABB) (*Node[T], bool) {
	if n == nil || !n.Box.Overlaps(bound) {
		return nil, false
	}
	if n.Leaf {
		if p.Dist(n.Point) <= r {
			return n, true
		}
		return nil, false
	}
	if found, ok := t.query(n.Left, p, r, bound); ok {
		return found, true
	}
	return t.query(n.Right, p, r, bound)
}

// Find is the degenerate, equality-by-identity variant of Query: it
// reports the leaf at exactly p, if one exists.
func (t *Tree[T]) Find(p geom.Point) (*Node[T], bool) {
	n, ok := t.Query(p, 0)
	if ok && !n.Point.Equal(p) {
		return nil, false
	}
	return n, ok
}

// QueryOrInsert is the query-or-insert pattern used to collapse
// numerically-close Voronoi vertices: it reuses an existing leaf within r
// of p, or inserts a new one when none is found.
func (t *Tree[T]) QueryOrInsert(p geom.Point, r float64, v T) (node *Node[T], inserted bool) {
	if n, ok := t.Query(p, r); ok {
		return n, false
	}
	return t.Insert(p, v), true
}
