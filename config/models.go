package config

// ProblemFile is the decoded shape of a TOML problem description: a flat
// list of nodes and a flat list of directed edges between them.
type ProblemFile struct {
	Node []NodeSpec `toml:"node"`
	Edge []EdgeSpec `toml:"edge"`
}

// NodeSpec is one [[node]] table: an id and its signed supply/demand
// balance (positive supply, negative demand, zero transit).
type NodeSpec struct {
	ID      string  `toml:"id"`
	Balance float64 `toml:"balance"`
}

// EdgeSpec is one [[edge]] table: a directed arc with a per-unit cost
// and an optional capacity. Capacity is a pointer so a problem file can
// omit it to mean "unbounded" — see EdgeSpec.capacityOrInfinite.
type EdgeSpec struct {
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Cost     float64  `toml:"cost"`
	Capacity *float64 `toml:"capacity"`
}
