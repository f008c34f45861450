package avltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalarTree builds the "plain AVL over ints" instantiation: Before,
// MakeInternal and goRight are all trivial, so the generic tree degenerates
// to a standard scalar AVL.
func scalarTree() *Tree[int, [2]int] {
	return &Tree[int, [2]int]{
		Before: func(candidate int, n *Node[int, [2]int]) bool {
			return candidate < n.Internal[1]
		},
		MakeInternal: func(existing, inserted int) [2]int {
			if inserted < existing {
				return [2]int{inserted, existing}
			}
			return [2]int{existing, inserted}
		},
	}
}

func goRightOnGE(existing, candidate int) bool {
	return candidate >= existing
}

func insertAll(t *Tree[int, [2]int], values []int) {
	for _, v := range values {
		t.Insert(v, goRightOnGE)
	}
}

func assertBalanced(t *testing.T, n *Node[int, [2]int]) {
	t.Helper()
	if n == nil || n.Leaf {
		return
	}
	assert.LessOrEqual(t, int(absInt32(Balance(n))), 1)
	assertBalanced(t, n.Left)
	assertBalanced(t, n.Right)
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestAVLRotationChains(t *testing.T) {
	cases := map[string][]int{
		"LL":      {1, 2, 3, 4, 5},
		"RR":      {5, 4, 3, 2, 1},
		"LR":      {10, 2, 6, 8},
		"RL":      {2, 10, 12, 11},
		"repeats": {1, 1, 1, 1, 1},
		"mixed":   {5, 4, 4, 8, 9, 1, 10},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			tree := scalarTree()
			insertAll(tree, values)
			require.NotNil(t, tree.Root)
			assertBalanced(t, tree.Root)

			leaves := InOrderLeaves(tree.Root, nil)
			assert.Len(t, leaves, len(values))

			internals := InOrderInternals(tree.Root, nil)
			assert.Len(t, internals, len(values)-1)
			for _, in := range internals {
				assert.LessOrEqual(t, in.Internal[0], in.Internal[1])
				pred := Predecessor(in)
				succ := Successor(in)
				require.NotNil(t, pred)
				require.NotNil(t, succ)
				assert.Equal(t, in.Internal[0], pred.Value)
				assert.Equal(t, in.Internal[1], succ.Value)
			}
		})
	}
}

func TestAVLInOrderSortedAfterLLChain(t *testing.T) {
	tree := scalarTree()
	insertAll(tree, []int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.InOrderValues())
}

func TestAVLHeightInvariant(t *testing.T) {
	tree := scalarTree()
	insertAll(tree, []int{5, 4, 4, 8, 9, 1, 10})
	for _, in := range InOrderInternals(tree.Root, nil) {
		assert.Equal(t, int32(1)+maxHeight(in.Left, in.Right), in.Height)
	}
}
