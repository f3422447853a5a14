package simplex

import (
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultThetaCalculator picks theta as the minimum theta_limit across
// the cycle and the leaving edge as the edge attaining it, preferring a
// basis edge on ties and then the lexicographically smallest EdgeID
// theta == 0 is a valid, deliberately allowed degenerate
// pivot — the iteration cap in Solver guards against cycling.
type DefaultThetaCalculator struct{}

// Execute returns (0, nil, nil) for an empty cycle, otherwise the
// bottleneck theta and its leaving edge.
func (DefaultThetaCalculator) Execute(cycle []CycleEdge, basis EdgeSet) (float64, *core.EdgeID, error) {
	if len(cycle) == 0 {
		return 0, nil, nil
	}

	theta := math.Inf(1)
	for _, ce := range cycle {
		if ce.ThetaLimit < theta {
			theta = ce.ThetaLimit
		}
	}
	if math.IsInf(theta, 1) {
		theta = 0
	}

	var candidates []CycleEdge
	for _, ce := range cycle {
		if math.Abs(ce.ThetaLimit-theta) < Epsilon {
			candidates = append(candidates, ce)
		}
	}

	best := candidates[0]
	for _, ce := range candidates[1:] {
		if thetaLeavingLess(ce, best, basis) {
			best = ce
		}
	}

	leaving := best.Edge
	return theta, &leaving, nil
}

// thetaLeavingLess orders tied candidates deterministically: a
// basis edge is preferred over a non-basis edge (keeps the outgoing
// basis a tree instead of re-selecting the entering edge itself as
// "leaving" whenever it ties), then lexicographically by EdgeID.
func thetaLeavingLess(a, b CycleEdge, basis EdgeSet) bool {
	aInBasis := basis.Contains(a.Edge)
	bInBasis := basis.Contains(b.Edge)
	if aInBasis != bInBasis {
		return aInBasis
	}
	return a.Edge.Less(b.Edge)
}
