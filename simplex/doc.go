// Package simplex implements the network simplex method for minimum-cost
// flow: a two-phase initialization that builds a feasible spanning-tree
// basis, and a pivoting engine that repeatedly computes node potentials,
// checks reduced costs for an improving edge, finds the cycle that edge
// closes in the basis tree, computes the largest step that stays
// feasible, and swaps basis membership — until no edge improves the
// objective.
//
// Every strategy in that pipeline — Initializer, PotentialCalculator,
// OptimalityChecker, CycleFinder, ThetaCalculator, FlowUpdater — is a
// one-method interface, and Solver is built with six corresponding
// Option values so a caller can swap any single piece of the algorithm
// without touching the others.
//
// Solver itself never mutates a published SolutionState: every pivot
// produces a brand-new one and appends it to history, which is what
// lets Controller step backward through previously computed states
// without recomputing anything.
package simplex
