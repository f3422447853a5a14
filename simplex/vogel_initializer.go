package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// VogelInitializer builds an initial basis with Vogel's Approximation
// Method instead of the two-phase artificial-root construction. It only
// applies to a pure bipartite transportation graph: every node is
// either a source (positive balance, edges only to sinks) or a sink
// (negative balance, edges only from sources), and every edge is
// uncapacitated. PhaseOneInitializer remains the default because it
// handles arbitrary network topologies; VogelInitializer is an opt-in
// for the narrower classical transportation shape, where it usually
// starts the pivot phase closer to optimal.
//
// The allocation loop tracks row/column penalty bookkeeping directly:
// currentSupply, currentDemand, activeSupply, activeDemand, and a
// partial basis that rebuildBasis later completes into a full tree.
type VogelInitializer struct{}

// Execute partitions g into sources and sinks, repeatedly allocates
// flow to the cell with the largest row/column opportunity-cost penalty,
// and completes the result into a spanning-tree basis the way
// rebuildBasis does for Phase 1.
func (VogelInitializer) Execute(g *core.Graph) (BasisResult, error) {
	if !g.CheckBalanceFeasibility() {
		return BasisResult{}, ErrInfeasibleBalance
	}

	sources, sinks, err := partitionBipartite(g)
	if err != nil {
		return BasisResult{}, err
	}

	cost := make(map[core.EdgeID]float64)
	for _, s := range sources {
		for _, t := range sinks {
			if e, ok := g.Edge(s, t); ok {
				if !math.IsInf(e.Capacity, 1) {
					return BasisResult{}, fmt.Errorf("%w: edge %s is capacitated, Vogel's method requires unbounded transportation arcs", ErrUnsupportedTopology, e.ID())
				}
				cost[e.ID()] = e.Cost
			}
		}
	}

	currentSupply := make(map[string]float64, len(sources))
	for _, s := range sources {
		n, _ := g.Node(s)
		currentSupply[s] = n.Balance
	}
	currentDemand := make(map[string]float64, len(sinks))
	for _, t := range sinks {
		n, _ := g.Node(t)
		currentDemand[t] = -n.Balance
	}

	activeSupply := make(map[string]bool, len(sources))
	for _, s := range sources {
		activeSupply[s] = true
	}
	activeDemand := make(map[string]bool, len(sinks))
	for _, t := range sinks {
		activeDemand[t] = true
	}

	flows := FlowMap{}
	for _, id := range g.EdgeIDs() {
		flows[id] = 0
	}
	partialBasis := EdgeSet{}

	for len(activeSupply) > 0 && len(activeDemand) > 0 {
		from, to, ok := vogelSelectCell(sources, sinks, activeSupply, activeDemand, cost)
		if !ok {
			return BasisResult{}, fmt.Errorf("%w: no edge connects remaining supply to remaining demand", ErrInfeasibleNoFlow)
		}

		alloc := math.Min(currentSupply[from], currentDemand[to])
		id := core.EdgeID{From: from, To: to}
		flows[id] += alloc
		partialBasis[id] = struct{}{}

		currentSupply[from] -= alloc
		currentDemand[to] -= alloc

		if currentSupply[from] < Epsilon {
			delete(activeSupply, from)
		}
		if currentDemand[to] < Epsilon {
			delete(activeDemand, to)
		}
	}

	basis, err := rebuildBasis(g, partialBasis, EdgeSet{}, flows)
	if err != nil {
		return BasisResult{}, err
	}

	nonBasis := EdgeSet{}
	for _, id := range g.EdgeIDs() {
		if !basis.Contains(id) {
			nonBasis[id] = struct{}{}
		}
	}

	return BasisResult{BasisEdges: basis, NonBasisEdges: nonBasis, Flows: flows}, nil
}

// partitionBipartite validates that g is a pure bipartite transportation
// graph (no transit nodes, every edge source->sink) and returns the
// sorted source and sink node IDs.
func partitionBipartite(g *core.Graph) ([]string, []string, error) {
	var sources, sinks []string
	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		switch n.Kind() {
		case core.NodeSource:
			sources = append(sources, id)
		case core.NodeSink:
			sinks = append(sinks, id)
		default:
			return nil, nil, fmt.Errorf("%w: node %q has zero balance, Vogel's method needs a pure source/sink bipartition", ErrUnsupportedTopology, id)
		}
	}

	sourceSet := make(map[string]bool, len(sources))
	for _, s := range sources {
		sourceSet[s] = true
	}
	sinkSet := make(map[string]bool, len(sinks))
	for _, t := range sinks {
		sinkSet[t] = true
	}

	for _, id := range g.EdgeIDs() {
		if !sourceSet[id.From] || !sinkSet[id.To] {
			return nil, nil, fmt.Errorf("%w: edge %s is not a direct source->sink arc", ErrUnsupportedTopology, id)
		}
	}

	return sources, sinks, nil
}

// vogelSelectCell picks the next allocation cell: the row or column with
// the largest opportunity-cost penalty (difference between its two
// cheapest reachable cells), then the cheapest cell within it. Ties are
// broken lexicographically by node ID throughout, for reproducible runs.
func vogelSelectCell(sources, sinks []string, activeSupply, activeDemand map[string]bool, cost map[core.EdgeID]float64) (string, string, bool) {
	type option struct {
		id      string
		penalty float64
		isRow   bool
	}

	var best *option
	var bestFrom, bestTo string

	considerRow := func(s string) {
		min1, min2 := math.Inf(1), math.Inf(1)
		var minTo string
		for _, t := range sinks {
			if !activeDemand[t] {
				continue
			}
			c, ok := cost[core.EdgeID{From: s, To: t}]
			if !ok {
				continue
			}
			if c < min1 {
				min2 = min1
				min1 = c
				minTo = t
			} else if c < min2 {
				min2 = c
			}
		}
		if math.IsInf(min1, 1) {
			return
		}
		penalty := min2 - min1
		if math.IsInf(min2, 1) {
			penalty = min1
		}
		opt := option{id: s, penalty: penalty, isRow: true}
		if best == nil || penalty > best.penalty || (penalty == best.penalty && s < best.id) {
			best = &opt
			bestFrom, bestTo = s, minTo
		}
	}

	considerCol := func(t string) {
		min1, min2 := math.Inf(1), math.Inf(1)
		var minFrom string
		for _, s := range sources {
			if !activeSupply[s] {
				continue
			}
			c, ok := cost[core.EdgeID{From: s, To: t}]
			if !ok {
				continue
			}
			if c < min1 {
				min2 = min1
				min1 = c
				minFrom = s
			} else if c < min2 {
				min2 = c
			}
		}
		if math.IsInf(min1, 1) {
			return
		}
		penalty := min2 - min1
		if math.IsInf(min2, 1) {
			penalty = min1
		}
		opt := option{id: t, penalty: penalty, isRow: false}
		if best == nil || penalty > best.penalty || (penalty == best.penalty && t < best.id) {
			best = &opt
			bestFrom, bestTo = minFrom, t
		}
	}

	for _, s := range sources {
		if activeSupply[s] {
			considerRow(s)
		}
	}
	for _, t := range sinks {
		if activeDemand[t] {
			considerCol(t)
		}
	}

	if best == nil {
		return "", "", false
	}
	return bestFrom, bestTo, true
}
