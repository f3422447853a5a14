// Package lvlath is a minimum-cost flow solver built on the network
// simplex method, with a two-phase initialization for capacitated
// transportation problems.
//
// Given a directed graph whose nodes carry a signed supply/demand
// balance and whose edges carry a per-unit cost and a capacity, the
// solver produces flows that satisfy every node's balance, respect
// every edge's capacity, and minimize total cost — or reports
// infeasibility. Every intermediate pivot is exposed as an immutable,
// navigable SolutionState so a caller can step forward and backward
// through a solve.
//
// The module is organized into:
//
//	core/        — the Graph/Node/Edge network model
//	simplex/     — the pivoting engine, its six strategies, and the
//	               Solver/Controller API
//	config/      — TOML problem-file loading for the CLI
//	cmd/netsimplex/ — a thin CLI driving a Controller end to end
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddNode("s", 10)
//	g.AddNode("t", -10)
//	g.AddEdge("s", "t", 2, core.InfiniteCapacity)
//
//	solver := simplex.NewSolver(g)
//	if err := solver.SolveStepByStep(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solver.CurrentState().ObjectiveValue) // 20
//
//	go get github.com/katalvlaran/lvlath
package lvlath
