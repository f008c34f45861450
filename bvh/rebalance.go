package bvh

import "math"

// rebalance implements the optional balanced variant: at an internal node
// try the four candidate rotations (swap right with left.left, right with
// left.right, left with right.left, left with right.right), score each
// with a cost blending weighted surface area and imbalance, and apply
// whichever option -- including doing nothing -- scores lowest. If the
// no-swap imbalance has magnitude >= 2 its cost is forced to +Inf so some
// swap is always taken.
//
// The coefficients of the cost function are a design knob: they are not
// tuned against any reference implementation.
func (t *Tree[T]) rebalance(n *Node[T]) RotationKind {
	if n == nil || n.Leaf {
		return NoRotation
	}

	type option struct {
		kind RotationKind
		cost float64
		undo func()
	}

	options := []option{{kind: NoRotation, cost: costOf(n.Left, n.Right, n), undo: func() {}}}
	if imbalance(n) >= 2 {
		options[0].cost = math.Inf(1)
	}

	if !n.Left.Leaf {
		L := n.Left
		options = append(options, option{
			kind: RotateRightWithLeftLeft,
			cost: swapCost(L, n.Right, L.Left),
			undo: func() { swapChildren(n, &n.Right, L, &L.Left) },
		})
		options = append(options, option{
			kind: RotateRightWithLeftRight,
			cost: swapCost(L, n.Right, L.Right),
			undo: func() { swapChildren(n, &n.Right, L, &L.Right) },
		})
	}
	if !n.Right.Leaf {
		R := n.Right
		options = append(options, option{
			kind: RotateLeftWithRightLeft,
			cost: swapCost(R, n.Left, R.Left),
			undo: func() { swapChildren(n, &n.Left, R, &R.Left) },
		})
		options = append(options, option{
			kind: RotateLeftWithRightRight,
			cost: swapCost(R, n.Left, R.Right),
			undo: func() { swapChildren(n, &n.Left, R, &R.Right) },
		})
	}

	best := options[0]
	for _, o := range options[1:] {
		if o.cost < best.cost {
			best = o
		}
	}
	if best.kind == NoRotation {
		// n itself doesn't rotate, but a child's box may have just changed
		// underneath it (the insertion, or a swap at a lower level during
		// this same rebalance walk), so n's own union box, count and
		// height still need refreshing from its current children.
		updateNode(n)
		return NoRotation
	}
	best.undo()
	return best.kind
}

// imbalance returns |left.height - right.height| for n.
func imbalance[T any](n *Node[T]) int32 {
	d := n.Left.Height - n.Right.Height
	if d < 0 {
		d = -d
	}
	return d
}

// costOf scores n's current two children with the blended cost function:
// cost = sum_i (child_i.count / n.count) * surface_area(child_i) * max(1, |imbalance|).
func costOf[T any](left, right, n *Node[T]) float64 {
	total := float64(n.Count)
	weighted := (float64(left.Count)/total)*left.Box.SurfaceArea() +
		(float64(right.Count)/total)*right.Box.SurfaceArea()
	factor := float64(imbalance(n))
	if factor < 1 {
		factor = 1
	}
	return weighted * factor
}

// swapCost scores the candidate rotation that would exchange carrierOther
// (a child of n) with moved (a child of carrier, n's other child), without
// mutating the tree. carrierOther descends to take moved's place under
// carrier, while moved rises to take carrierOther's place under n.
func swapCost[T any](carrier, carrierOther, moved *Node[T]) float64 {
	movedWasCarriersLeft := carrier.Left == moved
	var newCarrierBox AABB
	var newCarrierCount int32
	var newCarrierHeight int32
	if movedWasCarriersLeft {
		newCarrierBox = carrierOther.Box.Union(carrier.Right.Box)
		newCarrierCount = 1 + carrierOther.Count + carrier.Right.Count
		newCarrierHeight = 1 + max32(carrierOther.Height, carrier.Right.Height)
	} else {
		newCarrierBox = carrier.Left.Box.Union(carrierOther.Box)
		newCarrierCount = 1 + carrier.Left.Count + carrierOther.Count
		newCarrierHeight = 1 + max32(carrier.Left.Height, carrierOther.Height)
	}

	d := newCarrierHeight - moved.Height
	if d < 0 {
		d = -d
	}
	factor := float64(d)
	if factor < 1 {
		factor = 1
	}
	total := float64(1 + newCarrierCount + moved.Count)
	weighted := (float64(newCarrierCount)/total)*newCarrierBox.SurfaceArea() +
		(float64(moved.Count)/total)*moved.Box.SurfaceArea()

	return weighted * factor
}

// swapChildren commits a rotation: nSlot is the pointer field on n
// currently holding carrierOther (either &n.Left or &n.Right), and it is
// exchanged with carrier's child slot currently holding moved.
func swapChildren[T any](n *Node[T], nSlot **Node[T], carrier *Node[T], carrierSlot **Node[T]) {
	moved := *carrierSlot
	carrierOther := *nSlot

	*carrierSlot = carrierOther
	carrierOther.Parent = carrier
	*nSlot = moved
	moved.Parent = n

	updateNode(carrier)
	updateNode(n)
}
