package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/simplex"
)

// TestScenario_SingleEdge covers the smallest possible feasible network.
func TestScenario_SingleEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("s", 5)
	g.AddNode("t", -5)
	g.AddEdge("s", "t", 2, 10)

	solver := simplex.NewSolver(g)
	require.NoError(t, solver.SolveStepByStep())

	state := solver.CurrentState()
	assert.Equal(t, simplex.StepOptimal, state.StepType)
	assert.InDelta(t, 10.0, state.ObjectiveValue, 1e-6)
	assert.InDelta(t, 5.0, state.Flows[core.EdgeID{From: "s", To: "t"}], 1e-6)
}

// TestScenario_TriangleWithChoice covers a network where the optimizer
// must pick a cheaper two-hop path over a pricier direct edge.
func TestScenario_TriangleWithChoice(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", 4)
	g.AddNode("b", 0)
	g.AddNode("c", -4)
	g.AddEdge("a", "c", 5, 10)
	g.AddEdge("a", "b", 1, 10)
	g.AddEdge("b", "c", 1, 10)

	solver := simplex.NewSolver(g)
	require.NoError(t, solver.SolveStepByStep())

	state := solver.CurrentState()
	assert.InDelta(t, 8.0, state.ObjectiveValue, 1e-6)
	assert.InDelta(t, 0.0, state.Flows[core.EdgeID{From: "a", To: "c"}], 1e-6)
	assert.InDelta(t, 4.0, state.Flows[core.EdgeID{From: "a", To: "b"}], 1e-6)
	assert.InDelta(t, 4.0, state.Flows[core.EdgeID{From: "b", To: "c"}], 1e-6)
}

// TestScenario_CapacityBinding covers flow spilling onto a pricier route
// once the cheap one saturates.
func TestScenario_CapacityBinding(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", 5)
	g.AddNode("fast", 0)
	g.AddNode("slow", 0)
	g.AddNode("z", -5)
	g.AddEdge("a", "fast", 0, core.InfiniteCapacity)
	g.AddEdge("fast", "z", 1, 3)
	g.AddEdge("a", "slow", 0, core.InfiniteCapacity)
	g.AddEdge("slow", "z", 2, core.InfiniteCapacity)

	solver := simplex.NewSolver(g)
	require.NoError(t, solver.SolveStepByStep())

	state := solver.CurrentState()
	assert.InDelta(t, 7.0, state.ObjectiveValue, 1e-6)
	assert.InDelta(t, 3.0, state.Flows[core.EdgeID{From: "fast", To: "z"}], 1e-6)
	assert.InDelta(t, 2.0, state.Flows[core.EdgeID{From: "slow", To: "z"}], 1e-6)
}

// TestScenario_BalanceViolation covers a graph whose balances don't sum
// to zero, rejected before any basis is built.
func TestScenario_BalanceViolation(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", 5)
	g.AddNode("b", -3)
	g.AddEdge("a", "b", 1, 10)

	solver := simplex.NewSolver(g)
	err := solver.SolveStepByStep()
	assert.ErrorIs(t, err, simplex.ErrInfeasibleBalance)
}

// TestScenario_DisconnectedNoFeasibleFlow covers a graph where two node
// pairs carry balances but only one pair has a connecting edge: Phase 1
// cannot route C and D's supply/demand onto any real edge, so residual
// artificial flow remains positive at auxiliary optimality.
func TestScenario_DisconnectedNoFeasibleFlow(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", 5)
	g.AddNode("b", -5)
	g.AddNode("c", 3)
	g.AddNode("d", -3)
	g.AddEdge("a", "b", 1, 10)

	solver := simplex.NewSolver(g)
	err := solver.SolveStepByStep()
	assert.ErrorIs(t, err, simplex.ErrInfeasibleNoFlow)
}

// TestScenario_DisconnectedInfeasibility covers a graph with two
// internally-balanced, internally-connected components and no edge
// between them: Phase 1 succeeds (each component routes its own flow at
// zero artificial cost), but no spanning tree over all four nodes can
// be rebuilt from only two real edges.
func TestScenario_DisconnectedInfeasibility(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("s1", 5)
	g.AddNode("t1", -5)
	g.AddNode("s2", 3)
	g.AddNode("t2", -3)
	g.AddEdge("s1", "t1", 1, 10)
	g.AddEdge("s2", "t2", 1, 10)

	solver := simplex.NewSolver(g)
	err := solver.SolveStepByStep()
	assert.ErrorIs(t, err, simplex.ErrInvariantViolation)
}

// TestScenario_VogelBipartiteTransportation covers the pure
// source/sink transportation shape VogelInitializer targets: two
// sources, two sinks, every edge uncapacitated. Allocating the
// largest-penalty cell first should still land on the same optimum
// PhaseOneInitializer would reach, just via fewer pivots.
func TestScenario_VogelBipartiteTransportation(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("s1", 8)
	g.AddNode("s2", 5)
	g.AddNode("t1", -6)
	g.AddNode("t2", -7)
	g.AddEdge("s1", "t1", 4, core.InfiniteCapacity)
	g.AddEdge("s1", "t2", 6, core.InfiniteCapacity)
	g.AddEdge("s2", "t1", 3, core.InfiniteCapacity)
	g.AddEdge("s2", "t2", 8, core.InfiniteCapacity)

	solver := simplex.NewSolver(g, simplex.WithInitializer(simplex.VogelInitializer{}))
	require.NoError(t, solver.SolveStepByStep())

	state := solver.CurrentState()
	assert.Equal(t, simplex.StepOptimal, state.StepType)
	assert.InDelta(t, 8.0, state.Flows[core.EdgeID{From: "s1", To: "t1"}]+state.Flows[core.EdgeID{From: "s1", To: "t2"}], 1e-6)
	assert.InDelta(t, 5.0, state.Flows[core.EdgeID{From: "s2", To: "t1"}]+state.Flows[core.EdgeID{From: "s2", To: "t2"}], 1e-6)
	assert.InDelta(t, 6.0, state.Flows[core.EdgeID{From: "s1", To: "t1"}]+state.Flows[core.EdgeID{From: "s2", To: "t1"}], 1e-6)
	assert.InDelta(t, 7.0, state.Flows[core.EdgeID{From: "s1", To: "t2"}]+state.Flows[core.EdgeID{From: "s2", To: "t2"}], 1e-6)
	assert.InDelta(t, 61.0, state.ObjectiveValue, 1e-6)
}

// TestScenario_VogelRejectsCapacitatedEdge covers VogelInitializer's
// topology guard: it only supports uncapacitated transportation arcs.
func TestScenario_VogelRejectsCapacitatedEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("s", 5)
	g.AddNode("t", -5)
	g.AddEdge("s", "t", 1, 3)

	solver := simplex.NewSolver(g, simplex.WithInitializer(simplex.VogelInitializer{}))
	err := solver.SolveStepByStep()
	assert.ErrorIs(t, err, simplex.ErrUnsupportedTopology)
}

// TestScenario_VogelRejectsTransitNode covers VogelInitializer's other
// topology guard: every node must be a pure source or sink, never a
// zero-balance transit node.
func TestScenario_VogelRejectsTransitNode(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("s", 5)
	g.AddNode("m", 0)
	g.AddNode("t", -5)
	g.AddEdge("s", "t", 1, core.InfiniteCapacity)
	g.AddEdge("s", "m", 1, core.InfiniteCapacity)
	g.AddEdge("m", "t", 1, core.InfiniteCapacity)

	solver := simplex.NewSolver(g, simplex.WithInitializer(simplex.VogelInitializer{}))
	err := solver.SolveStepByStep()
	assert.ErrorIs(t, err, simplex.ErrUnsupportedTopology)
}

// TestScenario_SaturatedBottleneck covers a network where the optimal
// solution saturates a bottleneck edge at its capacity and spills the
// remainder onto a costlier route.
func TestScenario_SaturatedBottleneck(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("a", 6)
	g.AddNode("m", 0)
	g.AddNode("z", -6)
	g.AddEdge("a", "m", 1, core.InfiniteCapacity)
	g.AddEdge("m", "z", 1, 4)
	g.AddEdge("a", "z", 10, core.InfiniteCapacity)

	solver := simplex.NewSolver(g)
	require.NoError(t, solver.SolveStepByStep())

	state := solver.CurrentState()
	assert.InDelta(t, 4.0, state.Flows[core.EdgeID{From: "m", To: "z"}], 1e-6)
	assert.InDelta(t, 28.0, state.ObjectiveValue, 1e-6)
}
