// Package core provides the in-memory network model shared by the
// network-simplex solver: nodes carrying a signed supply/demand balance,
// directed edges carrying a per-unit cost and a capacity, and a Graph
// container with the adjacency indices the pivoting engine walks on
// every iteration.
//
// Nodes and edges are immutable once inserted — AddNode/AddEdge either
// register a brand-new entry or fail; nothing can be mutated in place,
// so any *Graph handed to a solver is safe to read concurrently from
// multiple goroutines (see Graph's doc comment for the locking model).
//
// A Node's Kind (Source, Sink, Transit) is derived entirely from the
// sign of its Balance — there is no separate field to keep in sync.
// A Graph's feasibility as a transportation problem reduces to one
// check: CheckBalanceFeasibility, i.e. that supply and demand sum to
// zero within Epsilon.
package core

// Epsilon is the shared numerical tolerance for every comparison against
// zero, a capacity bound, or a balance sum across this module — both in
// core and in the simplex solver built on top of it.
const Epsilon = 1e-9
