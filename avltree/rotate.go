package avltree

import "github.com/arl/assertgo"

// rotateRight performs a single right rotation (the LL case) around n, the
// way a classic AVL does it: n's left child rises, n becomes its right
// child. UpdateInternal, if non-nil, recomputes an internal's payload after
// its children change (the Voronoi specialization uses this to keep a
// breakpoint's foci pair in-order-consistent after rotation).
func rotateRight[L, I any](n *Node[L, I], updateInternal func(*Node[L, I])) *Node[L, I] {
	pivot := n.Left
	n.Left = pivot.Right
	n.Left.Parent = n
	pivot.Right = n

	pivot.Parent = n.Parent
	n.Parent = pivot

	recomputeHeight(n)
	if updateInternal != nil {
		updateInternal(n)
	}
	recomputeHeight(pivot)
	if updateInternal != nil {
		updateInternal(pivot)
	}
	return pivot
}

// rotateLeft performs a single left rotation (the RR case) around n: n's
// right child rises, n becomes its left child.
func rotateLeft[L, I any](n *Node[L, I], updateInternal func(*Node[L, I])) *Node[L, I] {
	pivot := n.Right
	n.Right = pivot.Left
	n.Right.Parent = n
	pivot.Left = n

	pivot.Parent = n.Parent
	n.Parent = pivot

	recomputeHeight(n)
	if updateInternal != nil {
		updateInternal(n)
	}
	recomputeHeight(pivot)
	if updateInternal != nil {
		updateInternal(pivot)
	}
	return pivot
}

// Rebalance inspects n's balance factor and applies whichever of the four
// standard rotations (LL, RR, LR, RL) restores |balance| <= 1, returning
// the new subtree root (n itself if no rotation was needed). It is the
// caller's job to fix up n's former parent's child pointer to the returned
// root -- RebalancePath below does that while walking to the tree root.
//
// When |balance| == 2 and the child's own balance is exactly 0 (equal
// subtrees), a single rotation is performed -- this is correct, just worth
// documenting, since either single rotation restores the AVL invariant in
// that case.
func Rebalance[L, I any](n *Node[L, I], updateInternal func(*Node[L, I])) *Node[L, I] {
	bal := Balance(n)
	var root *Node[L, I]
	switch {
	case bal > 1:
		if Balance(n.Left) < 0 {
			n.Left = rotateLeft(n.Left, updateInternal) // LR
		}
		root = rotateRight(n, updateInternal)
	case bal < -1:
		if Balance(n.Right) > 0 {
			n.Right = rotateRight(n.Right, updateInternal) // RL
		}
		root = rotateLeft(n, updateInternal)
	default:
		recomputeHeight(n)
		if updateInternal != nil {
			updateInternal(n)
		}
		root = n
	}
	assert.True(Balance(root) >= -1 && Balance(root) <= 1, "rotation must restore the AVL invariant")
	return root
}

// RebalancePath walks from n up to the root, rebalancing every internal
// ancestor and rewiring parent/child pointers as subtree roots change.
// It returns the tree's new root, which the caller must store back into
// Tree.Root (or the beachline's own root field) since a rotation at the
// top of the path can replace it.
func RebalancePath[L, I any](n *Node[L, I], updateInternal func(*Node[L, I])) *Node[L, I] {
	cur := n
	var newRoot *Node[L, I]
	for cur != nil {
		parent := cur.Parent
		wasLeftChild := parent != nil && parent.Left == cur

		balanced := Rebalance(cur, updateInternal)

		if parent == nil {
			newRoot = balanced
		} else if wasLeftChild {
			parent.Left = balanced
		} else {
			parent.Right = balanced
		}
		balanced.Parent = parent
		cur = parent
	}
	return newRoot
}
