package partitioning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

const tol = 1e-10

// point returns the hyperplane x > loc (direct) or x < loc.
func point(loc float64, direct bool) *euclidean1d.OrientedPoint {
	return euclidean1d.NewOrientedPoint(loc, direct, tol)
}

// unitTree returns the tree of [0, 1]:
//
//	x<0 ── plus: outside
//	    └─ minus: x>1 ── plus: outside
//	                 └─ minus: inside
func unitTree(t *testing.T) *partitioning.BSPTree[float64] {
	set, err := euclidean1d.NewIntervalsSet(0, 1, tol)
	require.NoError(t, err)

	return set.Tree(false)
}

// sameStructure compares cut positions, orientations and leaf attributes.
func sameStructure(t *testing.T, expected, actual *partitioning.BSPTree[float64]) {
	t.Helper()
	require.Equal(t, expected.IsLeaf(), actual.IsLeaf())
	if expected.IsLeaf() {
		assert.Equal(t, expected.Attribute(), actual.Attribute())
		return
	}
	e := expected.Cut().Hyperplane().(*euclidean1d.OrientedPoint)
	a := actual.Cut().Hyperplane().(*euclidean1d.OrientedPoint)
	assert.Equal(t, e.Location(), a.Location())
	assert.Equal(t, e.IsDirect(), a.IsDirect())
	sameStructure(t, expected.Plus(), actual.Plus())
	sameStructure(t, expected.Minus(), actual.Minus())
}

// checkLinks verifies the leaf/internal and parent invariants.
func checkLinks(t *testing.T, node *partitioning.BSPTree[float64]) {
	t.Helper()
	if node.Cut() == nil {
		assert.Nil(t, node.Plus())
		assert.Nil(t, node.Minus())
		return
	}
	require.NotNil(t, node.Plus())
	require.NotNil(t, node.Minus())
	assert.Same(t, node, node.Plus().Parent())
	assert.Same(t, node, node.Minus().Parent())
	checkLinks(t, node.Plus())
	checkLinks(t, node.Minus())
}

func TestBSPTree_NewLeafAndNode(t *testing.T) {
	leaf := partitioning.NewLeaf[float64](true)
	assert.True(t, leaf.IsLeaf())
	assert.Nil(t, leaf.Parent())
	assert.Equal(t, true, leaf.Attribute())

	plus, minus := partitioning.NewLeaf[float64](false), partitioning.NewLeaf[float64](true)
	node := partitioning.NewNode[float64](point(1, true).WholeHyperplane(), plus, minus, nil)
	assert.False(t, node.IsLeaf())
	assert.Same(t, node, plus.Parent())
	assert.Same(t, node, minus.Parent())
	checkLinks(t, node)
}

func TestBSPTree_InsertCut(t *testing.T) {
	tree := partitioning.NewLeaf[float64](true)
	require.True(t, tree.InsertCut(point(1, true)))

	assert.False(t, tree.IsLeaf())
	assert.Equal(t, true, tree.Attribute(), "attribute is left alone")
	assert.True(t, tree.Plus().IsLeaf())
	assert.True(t, tree.Minus().IsLeaf())
	assert.Nil(t, tree.Parent())
	checkLinks(t, tree)
}

func TestBSPTree_InsertCut_OutsideCell(t *testing.T) {
	tree := partitioning.NewBSPTree[float64]()
	require.True(t, tree.InsertCut(point(1, true)))

	// the minus cell is x < 1, a cut at 2 cannot lie in it
	minus := tree.Minus()
	assert.False(t, minus.InsertCut(point(2, true)))
	assert.True(t, minus.IsLeaf())

	// a cut at 0 does
	assert.True(t, minus.InsertCut(point(0, true)))
	checkLinks(t, tree)
}

func TestBSPTree_Copy_NoAliasing(t *testing.T) {
	tree := unitTree(t)
	copied := tree.Copy()

	sameStructure(t, tree, copied)
	assert.NotSame(t, tree.Minus(), copied.Minus())
	assert.Nil(t, tree.Minus().Copy().Parent())

	copied.Plus().SetAttribute(true)
	assert.Equal(t, false, tree.Plus().Attribute())
	checkLinks(t, copied)
}

func TestBSPTree_Cell(t *testing.T) {
	tree := unitTree(t)

	inside := tree.Cell(0.5, tol)
	assert.True(t, inside.IsLeaf())
	assert.Equal(t, true, inside.Attribute())

	assert.Same(t, tree.Minus(), tree.Cell(1, tol), "points on a cut return the cut node")
	assert.Same(t, tree, tree.Cell(1e-12, tol))
	assert.Same(t, tree.Plus(), tree.Cell(-3, tol))
	assert.Same(t, tree.Minus().Plus(), tree.Cell(5, tol))
}

func TestBSPTree_CloseCuts(t *testing.T) {
	tree := unitTree(t)

	close := tree.CloseCuts(1+1e-12, 1e-6)
	require.Len(t, close, 1)
	assert.Same(t, tree.Minus(), close[0])

	assert.Len(t, tree.CloseCuts(0.5, 1.0), 2)
	assert.Empty(t, tree.CloseCuts(10, 1e-6))
}

func TestBSPTree_Visit(t *testing.T) {
	tree := unitTree(t)
	orders := []partitioning.Order{
		partitioning.PlusMinusSub, partitioning.PlusSubMinus, partitioning.MinusPlusSub,
		partitioning.MinusSubPlus, partitioning.SubPlusMinus, partitioning.SubMinusPlus,
	}
	for _, order := range orders {
		var visited []*partitioning.BSPTree[float64]
		internal, leaves := 0, 0
		tree.Visit(order,
			func(n *partitioning.BSPTree[float64]) { internal++; visited = append(visited, n) },
			func(n *partitioning.BSPTree[float64]) { leaves++; visited = append(visited, n) },
		)
		assert.Equal(t, 2, internal, "order %d", order)
		assert.Equal(t, 3, leaves, "order %d", order)

		switch order {
		case partitioning.SubPlusMinus, partitioning.SubMinusPlus:
			assert.Same(t, tree, visited[0])
		case partitioning.PlusMinusSub, partitioning.MinusPlusSub:
			assert.Same(t, tree, visited[len(visited)-1])
		case partitioning.PlusSubMinus:
			assert.Same(t, tree, visited[1])
		case partitioning.MinusSubPlus:
			assert.Same(t, tree, visited[3])
		}
	}
}

func TestBSPTree_Condense(t *testing.T) {
	leaf := partitioning.NewLeaf[float64]
	same := partitioning.NewNode[float64](point(0, true).WholeHyperplane(), leaf(true), leaf(true), nil)
	same.Condense()
	assert.True(t, same.IsLeaf())
	assert.Equal(t, true, same.Attribute())

	different := partitioning.NewNode[float64](point(0, true).WholeHyperplane(), leaf(true), leaf(false), nil)
	different.Condense()
	assert.False(t, different.IsLeaf())
}

func TestBSPTree_Split_OnExistingCut(t *testing.T) {
	tree := unitTree(t)
	split := tree.Split(tree.Cut())

	assert.Same(t, tree.Cut(), split.Cut())
	sameStructure(t, tree, split)
	checkLinks(t, split)
	sameStructure(t, unitTree(t), tree)
}

func TestBSPTree_Split_InsideCell(t *testing.T) {
	tree := unitTree(t)
	split := tree.Split(point(0.5, true).WholeHyperplane())
	checkLinks(t, split)

	// everything above 0.5 ends on the plus side
	above, err := euclidean1d.NewIntervalsSetFromTree(split.Plus().Copy(), tol)
	require.NoError(t, err)
	assert.Equal(t, partitioning.Inside, above.CheckPoint(0.75))
	assert.Equal(t, partitioning.Outside, above.CheckPoint(1.5))

	// the split tree still describes [0, 1]
	set, err := euclidean1d.NewIntervalsSetFromTree(split, tol)
	require.NoError(t, err)
	intervals := set.Intervals()
	require.Len(t, intervals, 1)
	assert.Equal(t, 0.0, intervals[0].Lo)
	assert.Equal(t, 1.0, intervals[0].Hi)
}

func TestBSPTree_Split_Leaf(t *testing.T) {
	leaf := partitioning.NewLeaf[float64](true)
	sub := point(3, false).WholeHyperplane()
	split := leaf.Split(sub)

	assert.Same(t, sub, split.Cut())
	assert.Equal(t, true, split.Plus().Attribute())
	assert.Equal(t, true, split.Minus().Attribute())
	checkLinks(t, split)
}

// keepOutside turns vanishing cuts into outside leaves.
type keepOutside struct{}

func (keepOutside) FixNode(*partitioning.BSPTree[float64]) *partitioning.BSPTree[float64] {
	return partitioning.NewLeaf[float64](false)
}

func TestBSPTree_Merge_LeafMergerFunc(t *testing.T) {
	var calls int
	intersect := partitioning.LeafMergerFunc[float64](func(leaf, tree, parentTree *partitioning.BSPTree[float64], isPlusChild, _ bool) *partitioning.BSPTree[float64] {
		calls++
		result := tree
		if leaf.Attribute() == false {
			result = leaf
		}
		result.InsertInTree(parentTree, isPlusChild, keepOutside{})

		return result
	})

	merged := partitioning.NewLeaf[float64](true).Merge(unitTree(t), intersect)
	assert.Equal(t, 1, calls)
	sameStructure(t, unitTree(t), merged)

	// [0, 1] ∩ [0.5, 2]
	other, err := euclidean1d.NewIntervalsSet(0.5, 2, tol)
	require.NoError(t, err)
	merged = unitTree(t).Merge(other.Tree(false).Copy(), intersect)
	checkLinks(t, merged)
	set, err := euclidean1d.NewIntervalsSetFromTree(merged, tol)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, set.Size(), 1e-12)
	assert.Equal(t, partitioning.Inside, set.CheckPoint(0.75))
	assert.Equal(t, partitioning.Outside, set.CheckPoint(0.25))
	assert.Equal(t, partitioning.Outside, set.CheckPoint(1.5))
}

func TestBSPTree_PruneAroundConvexCell(t *testing.T) {
	tree := unitTree(t)
	cell := tree.Minus().Minus()
	pruned := cell.PruneAroundConvexCell(true, false, nil)
	checkLinks(t, pruned)

	set, err := euclidean1d.NewIntervalsSetFromTree(pruned, tol)
	require.NoError(t, err)
	assert.Equal(t, partitioning.Inside, set.CheckPoint(0.5))
	assert.Equal(t, partitioning.Outside, set.CheckPoint(-0.5))
	assert.Equal(t, partitioning.Outside, set.CheckPoint(1.5))
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "both", partitioning.Both.String())
	assert.Equal(t, "boundary", partitioning.Boundary.String())
	assert.Equal(t, "Side(9)", partitioning.Side(9).String())
}
