package simplex

import "github.com/katalvlaran/lvlath/core"

// Controller wraps a Solver with a cursor over its history, letting a
// caller step forward and backward through already-computed states
// without re-running any pivot. Stepping backward never
// mutates the underlying Solver; stepping forward past the cursor's
// current position asks the Solver to compute one more state only when
// the cursor has caught up to it.
type Controller struct {
	graph *core.Graph
	opts  []Option

	solver *Solver
	cursor int // index into solver.History() that CurrentState reports
}

// NewController builds a Controller over a fresh Solver for g.
func NewController(g *core.Graph, opts ...Option) *Controller {
	return &Controller{graph: g, opts: opts, solver: NewSolver(g, opts...), cursor: 0}
}

// IsStarted reports whether any step has been taken.
func (c *Controller) IsStarted() bool { return c.cursor > 0 }

// IsSolved reports whether the state under the cursor is StepOptimal.
func (c *Controller) IsSolved() bool { return c.CurrentState().StepType == StepOptimal }

// CanGoNext reports whether NextStep would either replay a cached state
// or successfully compute a new one. It optimistically returns true
// unless the cursor already sits on a terminal StepOptimal state.
func (c *Controller) CanGoNext() bool { return c.CurrentState().StepType != StepOptimal }

// CanGoPrevious reports whether PreviousStep would move the cursor.
func (c *Controller) CanGoPrevious() bool { return c.cursor > 0 }

// CurrentState returns the SolutionState the cursor currently points at.
func (c *Controller) CurrentState() SolutionState {
	return c.solver.History()[c.cursor]
}

// AllStates returns every state the underlying Solver has computed so
// far, regardless of where the cursor sits.
func (c *Controller) AllStates() []SolutionState {
	return c.solver.History()
}

// NextStep advances the cursor by one and reports whether a step was
// actually taken. If the solver already computed the next state
// (because the cursor had previously been moved back), it is replayed
// from history with no recomputation; otherwise the solver performs
// exactly one Step. Calling NextStep once the cursor sits on the
// terminal StepOptimal state is a no-op that returns (false, nil).
func (c *Controller) NextStep() (bool, error) {
	if c.cursor+1 < len(c.solver.History()) {
		c.cursor++
		return true, nil
	}

	if c.CurrentState().StepType == StepOptimal {
		return false, nil
	}

	before := len(c.solver.History())
	if err := c.solver.Step(); err != nil {
		return false, err
	}
	if len(c.solver.History()) > before {
		c.cursor++
		return true, nil
	}
	return false, nil
}

// PreviousStep moves the cursor back by one and reports whether it
// moved. It is always a pure history replay: the solver itself is
// never touched, so CurrentState then reports the very state originally
// published at that index.
func (c *Controller) PreviousStep() bool {
	if c.cursor == 0 {
		return false
	}
	c.cursor--
	return true
}

// SolveAll drives the solver to completion and moves the cursor to the
// final StepOptimal state.
func (c *Controller) SolveAll() error {
	if err := c.solver.SolveStepByStep(); err != nil {
		return err
	}
	c.cursor = len(c.solver.History()) - 1
	return nil
}

// Reset discards the underlying Solver and its entire history, and
// re-instantiates a fresh one over the same graph and options — a full
// restart, not merely rewinding the cursor.
func (c *Controller) Reset() {
	c.solver = NewSolver(c.graph, c.opts...)
	c.cursor = 0
}
