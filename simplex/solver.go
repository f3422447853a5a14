package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultMaxIterations bounds the number of pivots a Solver will
// perform before failing with ErrIterationLimit.
const DefaultMaxIterations = 1000

// Solver drives the network-simplex state machine:
// INITIAL_STATE -> INITIAL_BASIS -> (CALCULATE_POTENTIALS ->
// CHECK_OPTIMALITY -> [FIND_CYCLE -> CALCULATE_THETA -> UPDATE_FLOWS])*
// -> OPTIMAL. Every transition appends a fresh, immutable SolutionState
// to history; nothing already published is ever mutated.
//
// A Solver owns its graph read-only, its strategies, and its history —
// no operation inside it ever blocks or yields, so multiple Solvers may
// run concurrently over the same *core.Graph.
type Solver struct {
	graph *core.Graph
	cfg   config
	opts  []Option

	iteration int
	history   []SolutionState
	current   SolutionState
}

// NewSolver constructs a Solver over g. With no options the default
// strategies are used, and Phase 1 (PhaseOneInitializer) builds the
// initial basis via a nested Solver run on an auxiliary graph, itself
// constructed with the same non-initializer strategies.
func NewSolver(g *core.Graph, opts ...Option) *Solver {
	cfg := newConfig(opts)

	s := &Solver{
		graph: g,
		opts:  opts,
		current: SolutionState{
			StepType:  StepInitialState,
			Iteration: -1,
		},
	}

	if cfg.initializer == nil {
		cfg.initializer = PhaseOneInitializer{factory: s.nestedSolverFactory}
	}
	s.cfg = cfg
	s.history = []SolutionState{s.current}

	return s
}

// nestedSolverFactory builds the nested Solver PhaseOneInitializer uses
// to solve the auxiliary problem: same strategies as the parent except
// the initializer, which is forced to the supplied Initializer (a
// PrebuiltInitializer in practice) to short-circuit recursion into
// Phase 1 again.
func (s *Solver) nestedSolverFactory(g *core.Graph, prebuilt Initializer) *Solver {
	nestedOpts := make([]Option, 0, len(s.opts)+1)
	nestedOpts = append(nestedOpts, s.opts...)
	nestedOpts = append(nestedOpts, WithInitializer(prebuilt))

	return NewSolver(g, nestedOpts...)
}

// CurrentState returns the most recently published SolutionState.
func (s *Solver) CurrentState() SolutionState { return s.current }

// History returns every SolutionState published so far, in order. The
// returned slice is owned by the Solver; callers must not mutate it.
func (s *Solver) History() []SolutionState { return s.history }

// Iteration returns the current pivot count.
func (s *Solver) Iteration() int { return s.iteration }

// Step performs exactly one state-machine transition and appends the
// resulting SolutionState to history. Calling Step after StepOptimal is
// a documented no-op.
func (s *Solver) Step() error {
	if s.current.StepType == StepOptimal {
		return nil
	}

	if s.iteration >= s.cfg.maxIterations {
		return fmt.Errorf("%w: after %d iterations", ErrIterationLimit, s.iteration)
	}

	switch s.current.StepType {
	case StepInitialState:
		return s.executeInitialization()
	case StepInitialBasis, StepUpdateFlows:
		return s.executePotentialCalculation()
	case StepCalculatePotentials:
		return s.executeOptimalityCheck()
	case StepCheckOptimality:
		return s.executeCycleFinding()
	case StepFindCycle:
		return s.executeThetaCalculation()
	case StepCalculateTheta:
		if err := s.executeFlowUpdate(); err != nil {
			return err
		}
		s.iteration++
		return nil
	default:
		return fmt.Errorf("%w: unexpected step type %s", ErrInvariantViolation, s.current.StepType)
	}
}

// SolveStepByStep drives Step until StepOptimal is reached or an error
// (infeasibility or ErrIterationLimit) occurs.
func (s *Solver) SolveStepByStep() error {
	for s.current.StepType != StepOptimal {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Solver) publish(state SolutionState) {
	s.current = state
	s.history = append(s.history, state)
}

func (s *Solver) executeInitialization() error {
	result, err := s.cfg.initializer.Execute(s.graph)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, result.Flows)
	if err != nil {
		return err
	}

	s.publish(SolutionState{
		StepType:       StepInitialBasis,
		Iteration:      0,
		BasisEdges:     result.BasisEdges,
		NonBasisEdges:  result.NonBasisEdges,
		Flows:          result.Flows,
		Description:    "Initial feasible basis constructed",
		ObjectiveValue: objective,
	})

	return nil
}

func (s *Solver) executePotentialCalculation() error {
	potentials, err := s.cfg.potentialCalculator.Execute(s.graph, s.current.BasisEdges)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, s.current.Flows)
	if err != nil {
		return err
	}

	s.publish(SolutionState{
		StepType:       StepCalculatePotentials,
		Iteration:      s.iteration,
		BasisEdges:     s.current.BasisEdges,
		NonBasisEdges:  s.current.NonBasisEdges,
		Potentials:     potentials,
		Flows:          s.current.Flows,
		Description:    "Node potentials calculated",
		ObjectiveValue: objective,
	})

	return nil
}

func (s *Solver) executeOptimalityCheck() error {
	result, err := s.cfg.optimalityChecker.Execute(s.graph, s.current.NonBasisEdges, s.current.Potentials, s.current.Flows)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, s.current.Flows)
	if err != nil {
		return err
	}

	if result.IsOptimal {
		s.publish(SolutionState{
			StepType:       StepOptimal,
			Iteration:      s.iteration,
			BasisEdges:     s.current.BasisEdges,
			NonBasisEdges:  s.current.NonBasisEdges,
			Potentials:     s.current.Potentials,
			Deltas:         result.Deltas,
			Flows:          s.current.Flows,
			Description:    "Optimal solution found",
			ObjectiveValue: objective,
		})
		return nil
	}

	entering := *result.EnteringEdge
	delta := result.Deltas[entering]
	description := fmt.Sprintf("Violation detected: %s->%s (delta=%.2f, %s)",
		entering.From, entering.To, delta, directionUpper(result.ImprovementDirection))

	s.publish(SolutionState{
		StepType:             StepCheckOptimality,
		Iteration:            s.iteration,
		BasisEdges:           s.current.BasisEdges,
		NonBasisEdges:        s.current.NonBasisEdges,
		Potentials:           s.current.Potentials,
		Deltas:               result.Deltas,
		Flows:                s.current.Flows,
		EnteringEdge:         result.EnteringEdge,
		ImprovementDirection: result.ImprovementDirection,
		Description:          description,
		ObjectiveValue:       objective,
	})

	return nil
}

func directionUpper(d Direction) string {
	switch d {
	case DirectionIncrease:
		return "INCREASE"
	case DirectionDecrease:
		return "DECREASE"
	default:
		return "NONE"
	}
}

func (s *Solver) executeCycleFinding() error {
	cycle, err := s.cfg.cycleFinder.Execute(s.graph, s.current.BasisEdges, *s.current.EnteringEdge, s.current.ImprovementDirection, s.current.Flows)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, s.current.Flows)
	if err != nil {
		return err
	}

	s.publish(SolutionState{
		StepType:             StepFindCycle,
		Iteration:            s.iteration,
		BasisEdges:           s.current.BasisEdges,
		NonBasisEdges:        s.current.NonBasisEdges,
		Potentials:           s.current.Potentials,
		Deltas:               s.current.Deltas,
		Flows:                s.current.Flows,
		EnteringEdge:         s.current.EnteringEdge,
		ImprovementDirection: s.current.ImprovementDirection,
		Cycle:                cycle,
		Description:          fmt.Sprintf("Improvement cycle found (%d edges)", len(cycle)),
		ObjectiveValue:       objective,
	})

	return nil
}

func (s *Solver) executeThetaCalculation() error {
	theta, leaving, err := s.cfg.thetaCalculator.Execute(s.current.Cycle, s.current.BasisEdges)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, s.current.Flows)
	if err != nil {
		return err
	}

	s.publish(SolutionState{
		StepType:             StepCalculateTheta,
		Iteration:            s.iteration,
		BasisEdges:           s.current.BasisEdges,
		NonBasisEdges:        s.current.NonBasisEdges,
		Potentials:           s.current.Potentials,
		Deltas:               s.current.Deltas,
		Flows:                s.current.Flows,
		EnteringEdge:         s.current.EnteringEdge,
		LeavingEdge:          leaving,
		ImprovementDirection: s.current.ImprovementDirection,
		Cycle:                s.current.Cycle,
		Theta:                theta,
		Description:          fmt.Sprintf("Maximum flow adjustment: theta = %.2f", theta),
		ObjectiveValue:       objective,
	})

	return nil
}

func (s *Solver) executeFlowUpdate() error {
	newBasis, newNonBasis, newFlows, err := s.cfg.flowUpdater.Execute(
		s.graph, s.current.Cycle, s.current.Theta, *s.current.EnteringEdge,
		s.current.LeavingEdge, s.current.BasisEdges, s.current.Flows,
	)
	if err != nil {
		return err
	}

	objective, err := objectiveValue(s.graph, newFlows)
	if err != nil {
		return err
	}

	s.publish(SolutionState{
		StepType:       StepUpdateFlows,
		Iteration:      s.iteration,
		BasisEdges:     newBasis,
		NonBasisEdges:  newNonBasis,
		Flows:          newFlows,
		EnteringEdge:   s.current.EnteringEdge,
		LeavingEdge:    s.current.LeavingEdge,
		Theta:          s.current.Theta,
		Description:    "Flows updated, basis swapped",
		ObjectiveValue: objective,
	})

	return nil
}

// objectiveValue computes Σ cost·flow over every entry in flows,
// looking each edge up in g. Returns ErrInvariantViolation if an edge
// referenced by flows is missing from g — a solver bug, not user error.
func objectiveValue(g *core.Graph, flows FlowMap) (float64, error) {
	var total float64
	for id, flow := range flows {
		e, ok := g.EdgeByID(id)
		if !ok {
			return 0, fmt.Errorf("%w: edge %s in flows but not in graph", ErrInvariantViolation, id)
		}
		total += e.Cost * flow
	}
	return total, nil
}
