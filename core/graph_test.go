package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
)

func TestAddNode(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddNode("A", 10))
	n, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, "A", n.ID)
	assert.Equal(t, 10.0, n.Balance)
	assert.Equal(t, core.NodeSource, n.Kind())

	err := g.AddNode("A", 5)
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	assert.ErrorIs(t, g.AddNode("", 0), core.ErrEmptyNodeID)
}

func TestNodeKind(t *testing.T) {
	cases := []struct {
		balance float64
		want    core.NodeKind
	}{
		{10, core.NodeSource},
		{-5, core.NodeSink},
		{0, core.NodeTransit},
	}
	for _, tc := range cases {
		n := core.Node{ID: "x", Balance: tc.balance}
		assert.Equal(t, tc.want, n.Kind())
	}
}

func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 10))
	require.NoError(t, g.AddNode("B", -10))

	require.NoError(t, g.AddEdge("A", "B", 2, core.InfiniteCapacity))

	e, ok := g.Edge("A", "B")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Cost)
	assert.True(t, math.IsInf(e.Capacity, 1))

	assert.ErrorIs(t, g.AddEdge("A", "B", 1, 5), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge("A", "Z", 1, 5), core.ErrUnknownNode)
	assert.ErrorIs(t, g.AddEdge("A", "B", 1, -1), core.ErrNegativeCapacity)
}

func TestCheckBalanceFeasibility(t *testing.T) {
	feasible := core.NewGraph()
	require.NoError(t, feasible.AddNode("A", 5))
	require.NoError(t, feasible.AddNode("B", -5))
	assert.True(t, feasible.CheckBalanceFeasibility())

	infeasible := core.NewGraph()
	require.NoError(t, infeasible.AddNode("A", 5))
	require.NoError(t, infeasible.AddNode("B", -4))
	assert.False(t, infeasible.CheckBalanceFeasibility())
}

func TestAdjacencyQueries(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, 0))
	}
	require.NoError(t, g.AddEdge("A", "B", 1, 5))
	require.NoError(t, g.AddEdge("A", "C", 2, 5))
	require.NoError(t, g.AddEdge("C", "B", 1, 5))

	out := g.OutgoingEdges("A")
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].To)
	assert.Equal(t, "C", out[1].To)

	in := g.IncomingEdges("B")
	require.Len(t, in, 2)
	assert.Equal(t, "A", in[0].From)
	assert.Equal(t, "C", in[1].From)

	adj := g.AdjacentEdges("B")
	assert.Len(t, adj, 2)
}

func TestNodeIDsAndEdgeIDsAreSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddNode(id, 0))
	}
	require.NoError(t, g.AddEdge("C", "A", 1, 1))
	require.NoError(t, g.AddEdge("A", "B", 1, 1))

	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())
	assert.Equal(t, []core.EdgeID{{From: "A", To: "B"}, {From: "C", To: "A"}}, g.EdgeIDs())
}

func TestEdgeIDLess(t *testing.T) {
	assert.True(t, core.EdgeID{From: "A", To: "B"}.Less(core.EdgeID{From: "A", To: "C"}))
	assert.True(t, core.EdgeID{From: "A", To: "Z"}.Less(core.EdgeID{From: "B", To: "A"}))
	assert.False(t, core.EdgeID{From: "B", To: "A"}.Less(core.EdgeID{From: "A", To: "Z"}))
}

func TestClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 10))
	require.NoError(t, g.AddNode("B", -10))
	require.NoError(t, g.AddEdge("A", "B", 2, 4))

	clone := g.Clone()
	require.NoError(t, clone.AddNode("C", 0))
	assert.False(t, g.HasNode("C"))
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 3, clone.NumNodes())
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, 1, clone.NumEdges())
}
