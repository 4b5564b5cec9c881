// Package domain holds the core dependency-graph model: the Rule a parser
// produces, the dense NodeID space a Graph assigns to rules, and the
// immutable Graph itself with its forward/reverse adjacency and phony set.
package domain

import "go.trai.ch/zerr"

// Graph is an immutable dependency DAG keyed by dense NodeIDs. It is built
// once from a parsed rule set (or decoded from a cache) and is safe to
// share across any number of concurrent readers for its entire lifetime.
type Graph struct {
	commands [][]string
	children [][]NodeID
	parents  [][]NodeID
	idOf     map[string]NodeID
	names    []string
	phony    map[NodeID]struct{}
}

// BuildGraph assembles a Graph from a flat rule list and a set of phony
// names. Rules receive ids in slice order: the i-th rule gets NodeID(i).
func BuildGraph(rules []Rule, phonyNames []string) (*Graph, error) {
	n := len(rules)

	idOf := make(map[string]NodeID, n)
	names := make([]string, n)
	for i, r := range rules {
		if _, exists := idOf[r.Name]; exists {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateRule, "build graph"), "rule", r.Name)
		}
		idOf[r.Name] = NodeID(i)
		names[i] = r.Name
	}

	commands := make([][]string, n)
	children := make([][]NodeID, n)
	parents := make([][]NodeID, n)

	for i, r := range rules {
		child := NodeID(i)
		commands[i] = r.Commands

		for _, dep := range r.Deps {
			parent, ok := idOf[dep]
			if !ok {
				return nil, zerr.With(zerr.Wrap(ErrUnknownDependency, "build graph"), "dependency", dep)
			}
			children[parent] = append(children[parent], child)
			parents[child] = append(parents[child], parent)
		}
	}

	phony := make(map[NodeID]struct{}, len(phonyNames))
	for _, p := range phonyNames {
		id, ok := idOf[p]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrUnknownPhony, "build graph"), "phony", p)
		}
		phony[id] = struct{}{}
	}

	return &Graph{
		commands: commands,
		children: children,
		parents:  parents,
		idOf:     idOf,
		names:    names,
		phony:    phony,
	}, nil
}

// IDOf returns the NodeID for name, or NoNode if name is not a rule.
func (g *Graph) IDOf(name string) NodeID {
	id, ok := g.idOf[name]
	if !ok {
		return NoNode
	}
	return id
}

// NameOf returns the name of id.
func (g *Graph) NameOf(id NodeID) string {
	return g.names[id]
}

// CommandsOf returns the command sequence for id, in rule-file order.
func (g *Graph) CommandsOf(id NodeID) []string {
	return g.commands[id]
}

// ChildrenOf returns the ids of nodes that depend on id.
func (g *Graph) ChildrenOf(id NodeID) []NodeID {
	return g.children[id]
}

// ParentsOf returns the ids of nodes id depends on, in dep-list order.
func (g *Graph) ParentsOf(id NodeID) []NodeID {
	return g.parents[id]
}

// IsPhony reports whether id's staleness check always returns "must execute".
func (g *Graph) IsPhony(id NodeID) bool {
	_, ok := g.phony[id]
	return ok
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	return len(g.commands)
}

// Equal reports whether g and other describe the same graph, up to the
// insertion order of the phony set (which is not observable after a
// serialization round-trip). Used by cache round-trip tests.
func (g *Graph) Equal(other *Graph) bool {
	if g.Size() != other.Size() {
		return false
	}
	for id := 0; id < g.Size(); id++ {
		nid := NodeID(id)
		if g.names[id] != other.names[id] {
			return false
		}
		if !stringsEqual(g.commands[id], other.commands[id]) {
			return false
		}
		if !nodeIDsEqual(g.children[id], other.children[id]) {
			return false
		}
		if !nodeIDsEqual(g.parents[id], other.parents[id]) {
			return false
		}
		if g.IsPhony(nid) != other.IsPhony(nid) {
			return false
		}
		if other.IDOf(g.names[id]) != nid {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nodeIDsEqual(a, b []NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
