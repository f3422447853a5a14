package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultCycleFinder finds the unique cycle created by adding the
// entering edge to the basis tree, via an undirected depth-first search
// from the entering edge's head back to its tail.
type DefaultCycleFinder struct{}

// Execute returns the cycle as [entering edge, ...tree path edges...],
// each tagged with the sign its flow moves under the given improvement
// direction and the theta_limit it can absorb before hitting a bound.
func (DefaultCycleFinder) Execute(g *core.Graph, basis EdgeSet, entering core.EdgeID, direction Direction, flows FlowMap) ([]CycleEdge, error) {
	adjacency := buildUndirectedAdjacency(g, basis)

	path, found := dfsTreePath(adjacency, entering.To, entering.From, map[string]bool{})
	if !found {
		return nil, fmt.Errorf("%w: no tree path from %q to %q", ErrInvariantViolation, entering.To, entering.From)
	}

	enteringEdge, ok := g.EdgeByID(entering)
	if !ok {
		return nil, fmt.Errorf("%w: entering edge %s missing from graph", ErrInvariantViolation, entering)
	}

	cycle := make([]CycleEdge, 0, len(path)+1)
	cycle = append(cycle, cycleEdgeFor(enteringEdge, "entering", direction, flows))
	for _, link := range path {
		e, ok := g.Edge(link.from, link.to)
		if !ok {
			e, ok = g.Edge(link.to, link.from)
		}
		if !ok {
			return nil, fmt.Errorf("%w: tree-path edge between %q and %q missing from graph", ErrInvariantViolation, link.from, link.to)
		}
		kind := "forward"
		if !link.forward {
			kind = "backward"
		}
		cycle = append(cycle, cycleEdgeFor(e, kind, direction, flows))
	}

	return cycle, nil
}

// pathHop records one step of the DFS tree path together with which way
// the edge was traversed (forward = along its stored From->To direction).
type pathHop struct {
	from, to string
	forward  bool
}

// dfsTreePath performs an undirected depth-first search from current to
// target over the basis adjacency, returning the edges traversed in
// order. Written as an explicit stack instead of recursion to avoid
// unbounded Go call-stack growth on large trees.
func dfsTreePath(adjacency map[string][]treeLink, current, target string, visited map[string]bool) ([]pathHop, bool) {
	type frame struct {
		node string
		hop  pathHop
	}

	var path []pathHop
	var stack []frame
	stack = append(stack, frame{node: current})
	visited[current] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.node == target {
			for _, f := range stack[1:] {
				path = append(path, f.hop)
			}
			return path, true
		}

		advanced := false
		for _, link := range adjacency[top.node] {
			if visited[link.neighbor] {
				continue
			}
			visited[link.neighbor] = true
			stack = append(stack, frame{
				node: link.neighbor,
				hop:  pathHop{from: top.node, to: link.neighbor, forward: link.forward},
			})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}

	return nil, false
}

// cycleEdgeFor derives the sign and theta_limit for one edge in the
// cycle, per this sign table:
//
//	increase + (entering or forward) -> "+", capacity - flow
//	increase + backward              -> "-", flow
//	decrease + (entering or forward) -> "-", flow
//	decrease + backward               -> "+", capacity - flow
func cycleEdgeFor(e core.Edge, kind string, direction Direction, flows FlowMap) CycleEdge {
	flow := flows[e.ID()]

	forwardLike := kind == "entering" || kind == "forward"

	var sign Sign
	var limit float64
	switch {
	case direction == DirectionIncrease && forwardLike:
		sign, limit = SignPositive, e.Capacity-flow
	case direction == DirectionIncrease && !forwardLike:
		sign, limit = SignNegative, flow
	case direction == DirectionDecrease && forwardLike:
		sign, limit = SignNegative, flow
	default: // DirectionDecrease && backward
		sign, limit = SignPositive, e.Capacity-flow
	}

	return CycleEdge{Edge: e.ID(), Sign: sign, ThetaLimit: limit}
}
