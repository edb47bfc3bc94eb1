// Package digraph provides the small directed-graph machinery that
// spec §4.C4 (loop discovery) needs: Tarjan strongly-connected components
// and elementary-cycle enumeration within a component. It operates on
// plain integer node ids so internal/prepare can feed it abamodel.Atom
// values directly.
package digraph

import "sort"

// Graph is an adjacency-list directed graph over int node ids.
type Graph struct {
	next map[int]map[int]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{next: make(map[int]map[int]struct{})}
}

// AddEdge adds the edge from -> to, creating both endpoints as nodes.
func (g *Graph) AddEdge(from, to int) {
	g.ensureNode(from)
	g.ensureNode(to)
	g.next[from][to] = struct{}{}
}

func (g *Graph) ensureNode(n int) {
	if _, ok := g.next[n]; !ok {
		g.next[n] = make(map[int]struct{})
	}
}

// Nodes returns every node id in deterministic ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, 0, len(g.next))
	for n := range g.next {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

func (g *Graph) successors(n int) []int {
	succ := make([]int, 0, len(g.next[n]))
	for s := range g.next[n] {
		succ = append(succ, s)
	}
	sort.Ints(succ)
	return succ
}

// SCCs returns the strongly-connected components of g via Tarjan's
// algorithm, each as a sorted slice of node ids, in deterministic order
// (grounded on original_source/src/aba/traverse.rs::compute_sccs).
func (g *Graph) SCCs() [][]int {
	t := &tarjan{
		g:       g,
		index:   make(map[int]int),
		lowlink: make(map[int]int),
		onStack: make(map[int]bool),
	}
	for _, n := range g.Nodes() {
		if _, seen := t.index[n]; !seen {
			t.strongConnect(n)
		}
	}
	return t.sccs
}

type tarjan struct {
	g       *Graph
	index   map[int]int
	lowlink map[int]int
	onStack map[int]bool
	stack   []int
	counter int
	sccs    [][]int
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.successors(v) {
		if _, seen := t.index[w]; !seen {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}
	var scc []int
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	sort.Ints(scc)
	t.sccs = append(t.sccs, scc)
}

// Subgraph restricts g to the edges whose endpoints both lie in nodes.
func (g *Graph) Subgraph(nodes []int) *Graph {
	in := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		in[n] = struct{}{}
	}
	sub := New()
	for _, n := range nodes {
		sub.ensureNode(n)
	}
	for from, tos := range g.next {
		if _, ok := in[from]; !ok {
			continue
		}
		for to := range tos {
			if _, ok := in[to]; !ok {
				continue
			}
			sub.AddEdge(from, to)
		}
	}
	return sub
}
