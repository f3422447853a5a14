package simplex

import (
	"math"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultFlowUpdater applies the chosen theta step along the cycle and
// swaps the leaving edge out of / entering edge into the basis
type DefaultFlowUpdater struct{}

// Execute adjusts flows in place on a fresh copy of flows,
// rounds values within Epsilon of 0 or their edge's capacity back onto
// the bound exactly (numerical-stability cleanup absorbing pivot drift),
// and rebuilds the basis/non-basis partition.
func (DefaultFlowUpdater) Execute(g *core.Graph, cycle []CycleEdge, theta float64, entering core.EdgeID, leaving *core.EdgeID, basis EdgeSet, flows FlowMap) (EdgeSet, EdgeSet, FlowMap, error) {
	newFlows := flows.Clone()

	for _, ce := range cycle {
		current := newFlows[ce.Edge]
		var next float64
		if ce.Sign == SignPositive {
			next = current + theta
		} else {
			next = current - theta
		}

		e, ok := g.EdgeByID(ce.Edge)
		if ok {
			next = roundToBound(next, e.Capacity)
		}
		newFlows[ce.Edge] = next
	}

	newBasis := basis.Clone()

	if leaving != nil && entering != *leaving {
		delete(newBasis, *leaving)
		newBasis[entering] = struct{}{}
	}

	newNonBasis := EdgeSet{}
	for _, id := range g.EdgeIDs() {
		if !newBasis.Contains(id) {
			newNonBasis[id] = struct{}{}
		}
	}

	return newBasis, newNonBasis, newFlows, nil
}

// roundToBound snaps a flow value onto 0 or capacity when it lands
// within Epsilon of either, absorbing floating-point drift from repeated
// pivots.
func roundToBound(flow, capacity float64) float64 {
	if math.Abs(flow) < Epsilon {
		return 0
	}
	if math.Abs(flow-capacity) < Epsilon {
		return capacity
	}
	return flow
}
