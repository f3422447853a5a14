package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// artificialRootID names the synthetic root node Phase 1 attaches to
// every real node via an artificial edge. The leading/trailing
// underscores keep it out of the way of any realistic node ID.
const artificialRootID = "__artificial_root__"

// PhaseOneInitializer builds an initial feasible basis by the classic
// two-phase network-simplex construction: every node gets
// an artificial edge to a synthetic root, cost 1, unbounded capacity,
// starting with its own supply or demand magnitude as flow; every real
// edge is copied in at cost
// 0. A nested Solver — built by factory, which closes over the outer
// Solver's own strategies — then pivots this auxiliary problem to
// minimize artificial flow. Zero artificial flow at optimality proves
// the original balances admit a feasible flow; any remainder proves
// they don't.
type PhaseOneInitializer struct {
	factory func(g *core.Graph, prebuilt Initializer) *Solver
}

// Execute constructs and solves the auxiliary problem, then strips the
// artificial root back out, reconnecting any component the strip left
// disjoint with real edges via rebuildBasis.
func (p PhaseOneInitializer) Execute(g *core.Graph) (BasisResult, error) {
	if !g.CheckBalanceFeasibility() {
		return BasisResult{}, ErrInfeasibleBalance
	}

	aux, artificialEdges, auxBasis, auxFlows, err := buildAuxiliaryProblem(g)
	if err != nil {
		return BasisResult{}, err
	}

	auxNonBasis := EdgeSet{}
	for _, id := range g.EdgeIDs() {
		auxNonBasis[id] = struct{}{}
	}

	prebuilt := PrebuiltInitializer{Result: BasisResult{
		BasisEdges:    auxBasis,
		NonBasisEdges: auxNonBasis,
		Flows:         auxFlows,
	}}

	nested := p.factory(aux, prebuilt)
	if err := nested.SolveStepByStep(); err != nil {
		return BasisResult{}, fmt.Errorf("phase 1 auxiliary solve: %w", err)
	}

	final := nested.CurrentState()

	var phase1Objective float64
	for id := range artificialEdges {
		phase1Objective += final.Flows[id]
	}
	if phase1Objective > Epsilon {
		return BasisResult{}, fmt.Errorf("%w: residual artificial flow %.6g after phase 1", ErrInfeasibleNoFlow, phase1Objective)
	}

	flows := FlowMap{}
	for _, id := range g.EdgeIDs() {
		flows[id] = final.Flows[id]
	}

	basis, err := rebuildBasis(g, final.BasisEdges, artificialEdges, flows)
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

// buildAuxiliaryProblem copies g's nodes and edges (at cost 0) into a
// fresh graph with one extra root node, and attaches one artificial
// edge per real node, all at cost 1 and capacity +Inf: node -> root
// for supply, root -> node for demand, and root -> node at zero flow
// for transit nodes so the star still spans every node.
func buildAuxiliaryProblem(g *core.Graph) (*core.Graph, EdgeSet, EdgeSet, FlowMap, error) {
	aux := core.NewGraph()
	if err := aux.AddNode(artificialRootID, 0); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: building auxiliary root", ErrInvariantViolation)
	}

	nodeIDs := g.NodeIDs()
	for _, id := range nodeIDs {
		n, _ := g.Node(id)
		if err := aux.AddNode(id, n.Balance); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: copying node %q into auxiliary graph", ErrInvariantViolation, id)
		}
	}

	for _, id := range g.EdgeIDs() {
		e, _ := g.EdgeByID(id)
		if err := aux.AddEdge(e.From, e.To, 0, e.Capacity); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: copying edge %s into auxiliary graph", ErrInvariantViolation, id)
		}
	}

	artificialEdges := EdgeSet{}
	basis := EdgeSet{}
	flows := FlowMap{}
	for _, id := range g.EdgeIDs() {
		flows[id] = 0
	}

	for _, id := range nodeIDs {
		n, _ := g.Node(id)

		var artID core.EdgeID
		var capacity, flow float64
		switch {
		case n.Balance > Epsilon:
			artID = core.EdgeID{From: id, To: artificialRootID}
			capacity, flow = core.InfiniteCapacity, n.Balance
		case n.Balance < -Epsilon:
			artID = core.EdgeID{From: artificialRootID, To: id}
			capacity, flow = core.InfiniteCapacity, -n.Balance
		default:
			artID = core.EdgeID{From: artificialRootID, To: id}
			capacity, flow = core.InfiniteCapacity, 0
		}

		if err := aux.AddEdge(artID.From, artID.To, 1, capacity); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%w: adding artificial edge for %q", ErrInvariantViolation, id)
		}

		artificialEdges[artID] = struct{}{}
		basis[artID] = struct{}{}
		flows[artID] = flow
	}

	return aux, artificialEdges, basis, flows, nil
}

// rebuildBasis handles the case where, once Phase 1 is solved, the
// artificial root and its incident
// basis edges must be discarded, which can split the spanning tree into
// several components. A disjoint-set union reconnects them in three
// passes, each only filling gaps the previous one left: first keep
// whichever real (non-artificial) edges Phase 1 already settled into
// the basis; then prefer any non-basis edge that already carries
// nonzero flow (so the rebuilt tree stays consistent with the flows
// Phase 1 computed); finally fall back to any edge at all, in
// deterministic order, until a full spanning tree over g's own nodes
// is restored.
func rebuildBasis(g *core.Graph, auxBasis EdgeSet, artificialEdges EdgeSet, flows FlowMap) (EdgeSet, error) {
	ds := newDisjointSet(g.NodeIDs())
	basis := EdgeSet{}
	needed := g.NumNodes() - 1

	tryAdd := func(id core.EdgeID) {
		if ds.union(id.From, id.To) {
			basis[id] = struct{}{}
		}
	}

	for _, id := range auxBasis.SortedEdgeIDs() {
		if !artificialEdges.Contains(id) {
			tryAdd(id)
		}
	}

	if len(basis) < needed {
		for _, id := range g.EdgeIDs() {
			if len(basis) == needed {
				break
			}
			if !basis.Contains(id) && flows[id] > Epsilon {
				tryAdd(id)
			}
		}
	}

	if len(basis) < needed {
		for _, id := range g.EdgeIDs() {
			if len(basis) == needed {
				break
			}
			if !basis.Contains(id) {
				tryAdd(id)
			}
		}
	}

	if len(basis) != needed {
		return nil, fmt.Errorf("%w: %w: could not reconnect a spanning tree over %d nodes after removing the artificial root", ErrInfeasibleNoFlow, ErrInvariantViolation, g.NumNodes())
	}

	return basis, nil
}

// disjointSet is a union-find over node IDs, used only to rebuild a
// basis tree once the artificial root is stripped out.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	parent := make(map[string]string, len(ids))
	rank := make(map[string]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	return &disjointSet{parent: parent, rank: rank}
}

func (d *disjointSet) find(x string) string {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets containing a and b, returning false (no merge
// performed) if they were already in the same set — the caller's signal
// that adding this edge would close a cycle rather than extend a tree.
func (d *disjointSet) union(a, b string) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	return true
}

// PrebuiltInitializer returns a fixed BasisResult without running Phase
// 1 at all. It exists to let PhaseOneInitializer drive a nested Solver
// over the auxiliary graph without recursing into another Phase 1, and
// is equally useful for tests and callers who already know a feasible
// basis (e.g. a warm start from a previous solve).
type PrebuiltInitializer struct {
	Result BasisResult
}

// Execute returns the stored BasisResult unchanged, ignoring g.
func (p PrebuiltInitializer) Execute(g *core.Graph) (BasisResult, error) {
	return p.Result, nil
}
