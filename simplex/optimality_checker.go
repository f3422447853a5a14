package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultOptimalityChecker computes reduced costs for every non-basis
// edge and selects an entering edge by Dantzig's rule — maximum |delta|,
// ties broken lexicographically by EdgeID for deterministic replay.
type DefaultOptimalityChecker struct{}

type violation struct {
	score     float64
	edge      core.EdgeID
	direction Direction
}

// Execute computes deltas[e] = u[to] - u[from] - cost(e) for every
// non-basis edge, flags a violation when a lower-bound edge has
// delta > Epsilon or an upper-bound edge has delta < -Epsilon, and
// returns the strongest violation as the entering edge.
func (DefaultOptimalityChecker) Execute(g *core.Graph, nonBasis EdgeSet, potentials PotentialMap, flows FlowMap) (OptimalityResult, error) {
	deltas := make(DeltaMap, len(nonBasis))
	var violations []violation

	for _, id := range nonBasis.SortedEdgeIDs() {
		e, ok := g.EdgeByID(id)
		if !ok {
			return OptimalityResult{}, fmt.Errorf("%w: non-basis edge %s missing from graph", ErrInvariantViolation, id)
		}

		uFrom, ok := potentials[e.From]
		if !ok {
			return OptimalityResult{}, fmt.Errorf("%w: no potential for node %q", ErrInvariantViolation, e.From)
		}
		uTo, ok := potentials[e.To]
		if !ok {
			return OptimalityResult{}, fmt.Errorf("%w: no potential for node %q", ErrInvariantViolation, e.To)
		}

		delta := uTo - uFrom - e.Cost
		deltas[id] = delta

		flow := flows[id]
		atLowerBound := flow <= Epsilon
		atUpperBound := flow >= e.Capacity-Epsilon

		switch {
		case atLowerBound && delta > Epsilon:
			violations = append(violations, violation{score: delta, edge: id, direction: DirectionIncrease})
		case atUpperBound && delta < -Epsilon:
			violations = append(violations, violation{score: -delta, edge: id, direction: DirectionDecrease})
		}
	}

	if len(violations) == 0 {
		return OptimalityResult{IsOptimal: true, Deltas: deltas}, nil
	}

	best := violations[0]
	for _, v := range violations[1:] {
		if v.score > best.score || (v.score == best.score && v.edge.Less(best.edge)) {
			best = v
		}
	}

	entering := best.edge
	return OptimalityResult{
		IsOptimal:            false,
		Deltas:               deltas,
		EnteringEdge:         &entering,
		ImprovementDirection: best.direction,
		ViolationScore:       best.score,
	}, nil
}
