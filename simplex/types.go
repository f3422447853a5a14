package simplex

import (
	"errors"

	"github.com/katalvlaran/lvlath/core"
)

// Epsilon is re-exported from core so callers only need to import
// simplex for every tolerance comparison the solver documents.
const Epsilon = core.Epsilon

// Sentinel errors for the solver's error taxonomy. Wrap with
// fmt.Errorf("...: %w", ...) for extra context; match with errors.Is.
var (
	// ErrInfeasibleBalance is returned when a graph's node balances do
	// not sum to ~0, before any pivoting is attempted.
	ErrInfeasibleBalance = errors.New("simplex: infeasible: node balances do not sum to zero")

	// ErrInfeasibleNoFlow is returned when Phase 1 proves no feasible
	// flow exists for the original problem (auxiliary objective > 0).
	ErrInfeasibleNoFlow = errors.New("simplex: infeasible: no feasible flow exists")

	// ErrIterationLimit is returned when a further step would exceed the
	// pivot cap (DefaultMaxIterations unless set with WithMaxIterations).
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrInvariantViolation indicates a basis failed to be a spanning
	// tree, or a cycle search found no path — a solver bug, not user error.
	ErrInvariantViolation = errors.New("simplex: invariant violation")

	// ErrUnsupportedTopology is returned by initializers that only handle
	// a restricted graph shape (e.g. VogelInitializer's pure bipartite,
	// uncapacitated transportation graphs) when given anything else.
	ErrUnsupportedTopology = errors.New("simplex: graph topology not supported by this initializer")
)

// StepType enumerates the solver's state-machine phases.
type StepType int

const (
	StepInitialState StepType = iota
	StepInitialBasis
	StepCalculatePotentials
	StepCheckOptimality
	StepFindCycle
	StepCalculateTheta
	StepUpdateFlows
	StepOptimal
)

func (s StepType) String() string {
	switch s {
	case StepInitialState:
		return "initial_state"
	case StepInitialBasis:
		return "initial_basis"
	case StepCalculatePotentials:
		return "calculate_potentials"
	case StepCheckOptimality:
		return "check_optimality"
	case StepFindCycle:
		return "find_cycle"
	case StepCalculateTheta:
		return "calculate_theta"
	case StepUpdateFlows:
		return "update_flows"
	case StepOptimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// Sign marks a cycle edge's contribution direction for a pivot step.
type Sign int8

const (
	SignPositive Sign = 1
	SignNegative Sign = -1
)

func (s Sign) String() string {
	if s == SignPositive {
		return "+"
	}
	return "-"
}

// Direction is the improvement direction for the entering non-basis edge.
type Direction int

const (
	// DirectionNone is the zero value, used when no entering edge exists.
	DirectionNone Direction = iota
	// DirectionIncrease means the entering edge sits at its lower bound
	// (flow 0) and pushing flow up strictly improves cost.
	DirectionIncrease
	// DirectionDecrease means the entering edge sits at its upper bound
	// (flow == capacity) and pushing flow down strictly improves cost.
	DirectionDecrease
)

func (d Direction) String() string {
	switch d {
	case DirectionIncrease:
		return "increase"
	case DirectionDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// CycleEdge is one edge of the unique cycle created by adding the
// entering edge to the basis tree, together with the sign its flow
// moves during the pivot and the maximum theta it can absorb.
type CycleEdge struct {
	Edge       core.EdgeID
	Sign       Sign
	ThetaLimit float64
}

// EdgeSet is the map-as-set representation used throughout the solver
// for basis/non-basis edge membership — O(1) membership tests and
// O(1) insert/remove, at the cost of needing SortedEdgeIDs for any
// deterministic iteration (tie-breaking, test assertions).
type EdgeSet map[core.EdgeID]struct{}

// Contains reports whether id is a member of the set.
func (s EdgeSet) Contains(id core.EdgeID) bool {
	_, ok := s[id]
	return ok
}

// Clone returns a shallow copy (EdgeID is a value type, so this is a
// full copy) safe to mutate independently of the receiver.
func (s EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// SortedEdgeIDs returns the set's members in ascending lexicographic
// order, the iteration order every deterministic solver step relies on.
func (s EdgeSet) SortedEdgeIDs() []core.EdgeID {
	ids := make([]core.EdgeID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortEdgeIDs(ids)
	return ids
}

func sortEdgeIDs(ids []core.EdgeID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j].Less(ids[j-1]); j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// FlowMap maps an edge to its current flow value.
type FlowMap map[core.EdgeID]float64

// Clone returns an independent copy of the flow map.
func (f FlowMap) Clone() FlowMap {
	out := make(FlowMap, len(f))
	for id, v := range f {
		out[id] = v
	}
	return out
}

// PotentialMap maps a node ID to its simplex potential.
type PotentialMap map[string]float64

// DeltaMap maps a non-basis edge to its reduced cost.
type DeltaMap map[core.EdgeID]float64

// SolutionState is an immutable snapshot of the solver's full pivot
// context at one step in its history. A fresh SolutionState is produced
// on every transition and appended to history; none is ever mutated
// after being published.
type SolutionState struct {
	StepType             StepType
	Iteration            int
	BasisEdges           EdgeSet
	NonBasisEdges        EdgeSet
	Potentials           PotentialMap
	Deltas               DeltaMap
	Flows                FlowMap
	EnteringEdge         *core.EdgeID
	LeavingEdge          *core.EdgeID
	ImprovementDirection Direction
	Cycle                []CycleEdge
	Theta                float64
	Description          string
	ObjectiveValue       float64
}

// BasisResult is the output of an Initializer: a feasible basis, its
// complementary non-basis set, and the flows that realize it.
type BasisResult struct {
	BasisEdges    EdgeSet
	NonBasisEdges EdgeSet
	Flows         FlowMap
}

// OptimalityResult is the output of an OptimalityChecker.
type OptimalityResult struct {
	IsOptimal            bool
	Deltas               DeltaMap
	EnteringEdge         *core.EdgeID
	ImprovementDirection Direction
	ViolationScore       float64
}

// Initializer builds an initial feasible basis for the given graph.
// The default is PhaseOneInitializer.
type Initializer interface {
	Execute(g *core.Graph) (BasisResult, error)
}

// PotentialCalculator assigns node potentials consistent with the
// current basis tree. The default is DefaultPotentialCalculator.
type PotentialCalculator interface {
	Execute(g *core.Graph, basis EdgeSet) (PotentialMap, error)
}

// OptimalityChecker computes reduced costs and selects an entering edge,
// if any violation exists. The default is DefaultOptimalityChecker.
type OptimalityChecker interface {
	Execute(g *core.Graph, nonBasis EdgeSet, potentials PotentialMap, flows FlowMap) (OptimalityResult, error)
}

// CycleFinder finds the unique cycle created by adding the entering edge
// to the basis tree. The default is DefaultCycleFinder.
type CycleFinder interface {
	Execute(g *core.Graph, basis EdgeSet, entering core.EdgeID, direction Direction, flows FlowMap) ([]CycleEdge, error)
}

// ThetaCalculator computes the bottleneck step size and leaving edge
// The default is DefaultThetaCalculator.
type ThetaCalculator interface {
	Execute(cycle []CycleEdge, basis EdgeSet) (theta float64, leaving *core.EdgeID, err error)
}

// FlowUpdater applies the pivot step and swaps basis membership.
// The default is DefaultFlowUpdater.
type FlowUpdater interface {
	Execute(g *core.Graph, cycle []CycleEdge, theta float64, entering core.EdgeID, leaving *core.EdgeID, basis EdgeSet, flows FlowMap) (newBasis, newNonBasis EdgeSet, newFlows FlowMap, err error)
}
