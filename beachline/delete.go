package beachline

import "github.com/arl/go-voronoi/avltree"

// Delete removes the arc leaf node -- the one a fired circle event predicted
// would vanish -- from the beachline. node must be an interior arc (it has
// both a left and a right neighbor); this always holds for a circle event's
// arc, since only an arc with two neighbors can have one.
//
// Deletion removes node and whichever of its two bounding internals is its
// direct parent, and reincarnates the other (the "surviving" internal) as a
// new internal whose foci are the arcs now adjacent where node used to be,
// with a fresh, empty EdgeEndpoints -- the old internal's edge is one of
// the two the caller closes using the returned left/right internals.
//
// It returns the new internal together with the left and right internals
// (whichever survived, whichever was freshly reincarnated) so the caller
// can assign the newly computed Voronoi vertex as an endpoint on all three
// EdgeEndpoints records.
func (b *Beachline) Delete(node *ArcNode) (newInternal, leftInternal, rightInternal *ArcNode) {
	leftInternal = ancestorAsLeftChild(node)
	rightInternal = ancestorAsRightChild(node)
	leftArc := avltree.Predecessor(leftInternal)
	rightArc := avltree.Successor(rightInternal)

	parent := node.Parent
	nodeIsLeftChild := parent.Left == node

	var sibling *ArcNode
	if nodeIsLeftChild {
		sibling = parent.Right
	} else {
		sibling = parent.Left
	}
	b.spliceIn(parent, sibling)

	var survivor *ArcNode
	if leftInternal == parent {
		survivor = rightInternal
	} else {
		survivor = leftInternal
	}

	edge := &EdgeEndpoints{}
	newInternal = avltree.NewInternal[Arc, Breakpoint](
		Breakpoint{Left: leftArc.Value.Focus, Right: rightArc.Value.Focus, Edge: edge},
		survivor.Left,
		survivor.Right,
	)
	b.spliceIn(survivor, newInternal)

	// Mirror which neighbor the original implementation rebalances from:
	// the successor arc when node was a left child (its parent, the right
	// internal, is the one removed), the predecessor arc otherwise.
	var rebalanceFrom *ArcNode
	if nodeIsLeftChild {
		rebalanceFrom = rightArc
	} else {
		rebalanceFrom = leftArc
	}
	b.Root = avltree.RebalancePath(rebalanceFrom, updateBreakpoint)

	// leftInternal and rightInternal are returned as the original,
	// now-detached internals: each still holds the EdgeEndpoints record
	// that was tracing the edge ending at node's removal, which is exactly
	// what the caller needs to close -- whichever of the two was the
	// survivor has since been replaced in the tree by newInternal, but its
	// own (old) edge is the one this deletion just completed, not
	// newInternal's fresh one.
	return newInternal, leftInternal, rightInternal
}
