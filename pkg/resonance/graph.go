package resonance

import (
	"sort"
	"strings"
)

// Node is a word that appears in at least one remembered pair.
type Node struct {
	ID string `json:"id" yaml:"id"`
}

// Edge connects two remembered words; Weight is the observation count.
type Edge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Graph is the export form of the memory, ready for plotting tools.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Graph converts the memory into nodes and weighted edges. Output is
// sorted so repeated exports diff cleanly.
func (m Memory) Graph() Graph {
	g := Graph{}
	seen := map[string]bool{}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		a, b, ok := strings.Cut(k, "-")
		if !ok {
			continue
		}
		for _, n := range []string{a, b} {
			if !seen[n] {
				seen[n] = true
				g.Nodes = append(g.Nodes, Node{ID: n})
			}
		}
		g.Edges = append(g.Edges, Edge{Source: a, Target: b, Weight: m[k]})
	}
	return g
}
