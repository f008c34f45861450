// Package beachline implements Fortune's beachline: a sequence of parabolic
// arcs, one per site still visible from above the sweepline, represented as
// the leaves of an AVL tree whose internals are the breakpoints between
// adjacent arcs. It specializes package avltree directly rather than going
// through avltree.Tree's generic Insert: site events replace a single arc
// with a five-node subtree, and circle events delete an arc by splicing out
// two internals and reincarnating a third, neither of which is the classic
// "split a leaf in two" AVL insertion avltree.Tree implements.
package beachline

import (
	"github.com/arl/go-voronoi/avltree"
	"github.com/arl/go-voronoi/dcel"
	"github.com/arl/go-voronoi/geom"
)

// ArcNode is a node of the beachline: a leaf holds an Arc, an internal
// holds a Breakpoint.
type ArcNode = avltree.Node[Arc, Breakpoint]

// Arc is a beachline leaf: the site generating the parabola, plus whatever
// circle event currently predicts this arc's disappearance (nil if none is
// pending). The back-reference is mutual: CircleEvent.Leaf points here.
type Arc struct {
	Focus  geom.Point
	Circle *CircleEvent
}

// EdgeEndpoints is the mutable, shared pair of DCEL vertices a breakpoint's
// edge will eventually connect. It starts empty; it is shared by identity
// between the two internals a site event creates together, and receives at
// most one endpoint per circle event until both are known.
type EdgeEndpoints struct {
	P0, P1 *dcel.Vertex
}

// Closed reports whether both endpoints are set.
func (e *EdgeEndpoints) Closed() bool { return e.P0 != nil && e.P1 != nil }

// AddEndpoint records v as the first or second endpoint. Calling it a third
// time is a caller error -- an edge's endpoints are assigned exactly twice
// over its lifetime, once per bounding internal.
func (e *EdgeEndpoints) AddEndpoint(v *dcel.Vertex) {
	if e.P0 == nil {
		e.P0 = v
		return
	}
	e.P1 = v
}

// Breakpoint is a beachline internal: the ordered pair of foci (Left, the
// arc immediately to this breakpoint's left; Right, the arc to its right)
// and the edge this breakpoint is tracing. The pair is an invariant --
// after every rotation it is recomputed as (Predecessor(n), Successor(n))
// via updateBreakpoint -- so it always equals the focus of the arc
// structurally adjacent on each side, not just its value at creation.
type Breakpoint struct {
	Left, Right geom.Point
	Edge        *EdgeEndpoints
}

// X returns the breakpoint's abscissa under the sweepline at y.
func (b Breakpoint) X(sweepY float64) float64 {
	return geom.ParabolaIntersection(b.Left, b.Right, sweepY).X
}

// updateBreakpoint keeps an internal's foci pair in-order-consistent after
// a rotation changes which leaves are structurally adjacent to it.
func updateBreakpoint(n *ArcNode) {
	if n.Leaf {
		return
	}
	if pred := avltree.Predecessor(n); pred != nil {
		n.Internal.Left = pred.Value.Focus
	}
	if succ := avltree.Successor(n); succ != nil {
		n.Internal.Right = succ.Value.Focus
	}
}

// Beachline holds the AVL tree of arcs and breakpoints, plus the internals
// generated while all inserted sites share one y (before the first site
// event that breaks the tie switches the construction to Fortune's normal
// five-node insertion). Those internals never enter the tree -- they are
// recorded here so the driver's postprocess step can still close their
// edges.
type Beachline struct {
	Root          *ArcNode
	ColinearNodes []*ArcNode
	colinear      bool
}

// New returns an empty beachline.
func New() *Beachline {
	return &Beachline{colinear: true}
}

// Insert adds site to the beachline under the sweepline at site.Y, and
// returns the new arc leaf.
func (b *Beachline) Insert(site geom.Point) *ArcNode {
	if b.Root == nil {
		b.Root = avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: site})
		return b.Root
	}

	sibling := b.findSibling(site)
	if b.colinear && sibling.Value.Focus.Y == site.Y {
		return b.insertColinear(site, sibling)
	}
	return b.insertNormal(site, sibling)
}

// findSibling locates the arc leaf site belongs next to: while the
// degenerate collinear-prefix regime is active, the rightmost leaf sharing
// site's y; once that regime ends (permanently, on the first mismatch),
// the arc directly above site under the current sweepline.
func (b *Beachline) findSibling(site geom.Point) *ArcNode {
	if b.colinear {
		n := b.Root
		for {
			if n.Leaf {
				if geom.Approx(site.Y, n.Value.Focus.Y) && site.X > n.Value.Focus.X {
					return n
				}
			} else if geom.Approx(site.Y, n.Internal.Right.Y) && site.X > n.Internal.Right.X {
				n = n.Right
				continue
			}
			b.colinear = false
			break
		}
	}

	n := b.Root
	for !n.Leaf {
		x := n.Internal.X(site.Y)
		if geom.Approx(site.X, x) || site.X < x {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n
}

// insertColinear appends pi directly to the right of sibling, the arc
// structure degenerating to a sorted list while every inserted site shares
// one y. The twin internal that would ordinarily mirror this one is never
// attached to the tree; it is only recorded so its edge can be closed
// during postprocess.
func (b *Beachline) insertColinear(pi geom.Point, sibling *ArcNode) *ArcNode {
	pj := sibling.Value.Focus
	edge := &EdgeEndpoints{}

	internal := avltree.NewInternal[Arc, Breakpoint](
		Breakpoint{Left: pj, Right: pi, Edge: edge},
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pj}),
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pi}),
	)
	twin := avltree.NewInternal[Arc, Breakpoint](
		Breakpoint{Left: pi, Right: pj, Edge: edge},
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pi}),
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pj}),
	)
	b.ColinearNodes = append(b.ColinearNodes, twin)

	b.spliceIn(sibling, internal)

	newLeaf := internal.Right
	b.Root = avltree.RebalancePath(newLeaf, updateBreakpoint)
	return newLeaf
}

// insertNormal replaces sibling, the arc directly above pi, with the
// classic five-node site-event subtree: sibling's focus pj on both sides of
// a new leaf for pi, the two new internals sharing one EdgeEndpoints. Any
// circle event pending on the consumed arc is invalidated -- pi's arrival
// means it will never collapse the way that event predicted.
func (b *Beachline) insertNormal(pi geom.Point, sibling *ArcNode) *ArcNode {
	pj := sibling.Value.Focus
	edge := &EdgeEndpoints{}

	leafCenter := avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pi})
	internalLeft := avltree.NewInternal[Arc, Breakpoint](
		Breakpoint{Left: pj, Right: pi, Edge: edge},
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pj}),
		leafCenter,
	)
	internalRight := avltree.NewInternal[Arc, Breakpoint](
		Breakpoint{Left: pi, Right: pj, Edge: edge},
		internalLeft,
		avltree.NewLeaf[Arc, Breakpoint](Arc{Focus: pj}),
	)

	b.spliceIn(sibling, internalRight)

	if sibling.Value.Circle != nil {
		sibling.Value.Circle.Deactivate()
	}

	b.Root = avltree.RebalancePath(leafCenter, updateBreakpoint)
	return leafCenter
}

// spliceIn replaces old's position in the tree with replacement.
func (b *Beachline) spliceIn(old, replacement *ArcNode) {
	parent := old.Parent
	replacement.Parent = parent
	if parent == nil {
		b.Root = replacement
	} else if parent.Left == old {
		parent.Left = replacement
	} else {
		parent.Right = replacement
	}
}

// ancestorAsLeftChild climbs from n while n is a left child, returning the
// first ancestor reached via a right-child step (nil if n is the tree's
// overall leftmost descendant).
func ancestorAsLeftChild(n *ArcNode) *ArcNode {
	cur := n
	for cur.Parent != nil && cur.Parent.Left == cur {
		cur = cur.Parent
	}
	return cur.Parent
}

// ancestorAsRightChild is ancestorAsLeftChild's mirror.
func ancestorAsRightChild(n *ArcNode) *ArcNode {
	cur := n
	for cur.Parent != nil && cur.Parent.Right == cur {
		cur = cur.Parent
	}
	return cur.Parent
}

// LeftArc returns the arc leaf immediately to n's left, or nil if n is the
// leftmost arc on the beachline.
func LeftArc(n *ArcNode) *ArcNode {
	anc := ancestorAsLeftChild(n)
	if anc == nil {
		return nil
	}
	return avltree.Predecessor(anc)
}

// RightArc returns the arc leaf immediately to n's right, or nil if n is
// the rightmost arc on the beachline.
func RightArc(n *ArcNode) *ArcNode {
	anc := ancestorAsRightChild(n)
	if anc == nil {
		return nil
	}
	return avltree.Successor(anc)
}

// InOrderInternals returns every breakpoint in the tree, left to right.
// ColinearNodes' twins are not part of the tree and must be handled
// separately by callers (the driver's postprocess step chains the two).
func (b *Beachline) InOrderInternals() []*ArcNode {
	return avltree.InOrderInternals(b.Root, nil)
}
