// Package config loads a network-simplex problem description from a
// TOML file into a *core.Graph, the way the CLI's only input format.
//
// A problem file looks like:
//
//	[[node]]
//	id = "a"
//	balance = 10
//
//	[[node]]
//	id = "b"
//	balance = -10
//
//	[[edge]]
//	from = "a"
//	to = "b"
//	cost = 2
//	# capacity omitted means unbounded
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath/core"
)

// Load reads and decodes the TOML problem file at path.
func Load(path string) (ProblemFile, error) {
	if _, err := os.Stat(path); err != nil {
		return ProblemFile{}, errors.Wrapf(err, "config: problem file %q", path)
	}

	var pf ProblemFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return ProblemFile{}, errors.Wrapf(err, "config: decoding %q", path)
	}

	return pf, nil
}

// ToGraph builds a *core.Graph from the decoded problem file, surfacing
// every core error wrapped with the offending node or edge for context.
func (pf ProblemFile) ToGraph() (*core.Graph, error) {
	g := core.NewGraph()

	for _, n := range pf.Node {
		if err := g.AddNode(n.ID, n.Balance); err != nil {
			return nil, errors.Wrapf(err, "config: node %q", n.ID)
		}
	}

	for _, e := range pf.Edge {
		if err := g.AddEdge(e.From, e.To, e.Cost, e.capacityOrInfinite()); err != nil {
			return nil, errors.Wrapf(err, "config: edge %s->%s", e.From, e.To)
		}
	}

	return g, nil
}

// capacityOrInfinite returns the configured capacity, or
// core.InfiniteCapacity when the problem file left it unset.
func (e EdgeSpec) capacityOrInfinite() float64 {
	if e.Capacity == nil {
		return core.InfiniteCapacity
	}
	return *e.Capacity
}
