package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// DefaultPotentialCalculator assigns node potentials by breadth-first
// traversal of the basis viewed as an undirected tree.
//
// For every basis edge (i,j) the traversal enforces u[j] = u[i] + cost;
// crossing the edge in reverse enforces u[i] = u[j] - cost. The root is
// the lexicographically smallest node ID, pinned at potential 0, which
// keeps results reproducible across runs.
// A zero-size type, like the teacher's strategy structs.
type DefaultPotentialCalculator struct{}

// Execute computes potentials for every node reachable from the basis
// tree's root. Returns ErrInvariantViolation if the basis does not span
// every node in g (disconnected or, by size, not a tree).
func (DefaultPotentialCalculator) Execute(g *core.Graph, basis EdgeSet) (PotentialMap, error) {
	nodeIDs := g.NodeIDs()
	if len(nodeIDs) == 0 {
		return PotentialMap{}, nil
	}

	if len(basis) != len(nodeIDs)-1 {
		return nil, fmt.Errorf("%w: basis has %d edges, a spanning tree over %d nodes needs %d",
			ErrInvariantViolation, len(basis), len(nodeIDs), len(nodeIDs)-1)
	}

	adjacency := buildUndirectedAdjacency(g, basis)

	root := nodeIDs[0]
	potentials := PotentialMap{root: 0}
	visited := map[string]bool{root: true}
	queue := []string{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentPotential := potentials[current]

		for _, link := range adjacency[current] {
			if visited[link.neighbor] {
				continue
			}
			visited[link.neighbor] = true
			if link.forward {
				potentials[link.neighbor] = currentPotential + link.cost
			} else {
				potentials[link.neighbor] = currentPotential - link.cost
			}
			queue = append(queue, link.neighbor)
		}
	}

	if len(visited) != len(nodeIDs) {
		return nil, fmt.Errorf("%w: basis does not span all nodes (reached %d of %d)",
			ErrInvariantViolation, len(visited), len(nodeIDs))
	}

	return potentials, nil
}

// treeLink is one undirected hop across a basis edge: forward is true
// when walking the edge in its stored From->To direction.
type treeLink struct {
	neighbor string
	cost     float64
	forward  bool
}

// buildUndirectedAdjacency turns the directed basis edge set into an
// undirected adjacency list keyed by node ID — shared by the potential
// calculator's BFS and the cycle finder's DFS, both of which only care
// about tree connectivity, not edge direction, while still needing the
// original direction to know whether to add or subtract cost — the
// directed edge set stays authoritative for cost and capacity lookups,
// this just records forward/backward per hop.
func buildUndirectedAdjacency(g *core.Graph, basis EdgeSet) map[string][]treeLink {
	adjacency := make(map[string][]treeLink, g.NumNodes())
	for _, id := range g.NodeIDs() {
		adjacency[id] = nil
	}

	for _, id := range basis.SortedEdgeIDs() {
		e, ok := g.EdgeByID(id)
		if !ok {
			continue
		}
		adjacency[e.From] = append(adjacency[e.From], treeLink{neighbor: e.To, cost: e.Cost, forward: true})
		adjacency[e.To] = append(adjacency[e.To], treeLink{neighbor: e.From, cost: e.Cost, forward: false})
	}

	return adjacency
}
