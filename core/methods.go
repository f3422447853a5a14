package core

import "sort"

// OutgoingEdges returns every edge leaving id, sorted by destination.
func (g *Graph) OutgoingEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdgesLocked(g.out[id])
}

// IncomingEdges returns every edge arriving at id, sorted by source.
func (g *Graph) IncomingEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdgesLocked(g.in[id])
}

// AdjacentEdges returns the union of OutgoingEdges and IncomingEdges for
// id, outgoing first, each group sorted by neighbor.
func (g *Graph) AdjacentEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := g.sortedEdgesLocked(g.out[id])
	edges = append(edges, g.sortedEdgesLocked(g.in[id])...)

	return edges
}

// sortedEdgesLocked resolves a neighbor->EdgeID index into Edge values
// sorted by neighbor id. Caller must hold g.mu.
func (g *Graph) sortedEdgesLocked(index map[string]EdgeID) []Edge {
	neighbors := make([]string, 0, len(index))
	for n := range index {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)

	edges := make([]Edge, 0, len(neighbors))
	for _, n := range neighbors {
		edges = append(edges, g.edges[index[n]])
	}

	return edges
}

func (g *Graph) String() string {
	ids := g.NodeIDs()
	s := "Graph with nodes: ["
	for i, id := range ids {
		if i > 0 {
			s += ", "
		}
		s += id
	}
	return s + "]"
}
