// Package prepare implements spec §4.C4: reachability trimming and loop
// discovery over an Aba's rule dependency graph, producing a PreparedAba
// that the encoders (internal/encode, internal/problem) consume.
package prepare

import (
	"sort"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/diag"
	"github.com/aba2sat/aba2sat/internal/digraph"
)

// PreparedAba extends an Aba with a trimmed rule list and the ordered list
// of discovered loops (spec §3).
type PreparedAba struct {
	*abamodel.Aba
	trimmedRules []abamodel.Rule
	loops        []Loop
}

// Options configures Prepare.
type Options struct {
	// MaxLoops caps the total number of loops discovery may emit,
	// including those produced by the union-closure pass. Zero means
	// unbounded.
	MaxLoops int
}

// Rules returns the trimmed rule list (spec §4.C4's reachability trim),
// shadowing Aba.Rules for every later encoding stage.
func (p *PreparedAba) Rules() []abamodel.Rule {
	return p.trimmedRules
}

// Loops returns the discovered loops, in no particular observable order.
func (p *PreparedAba) Loops() []Loop {
	return p.loops
}

// Prepare trims unreachable rules and discovers loops (spec §4.C4).
func Prepare(aba *abamodel.Aba, opts Options) *PreparedAba {
	trimmed := trimUnreachable(aba)
	loops := discoverLoops(aba.Assumptions(), trimmed, opts.MaxLoops)
	return &PreparedAba{Aba: aba, trimmedRules: trimmed, loops: loops}
}

// trimUnreachable starts from A and expands reachability by repeatedly
// applying rules whose whole body is reachable, then drops every rule
// whose head or any body atom never became reachable.
func trimUnreachable(aba *abamodel.Aba) []abamodel.Rule {
	reachable := make(map[abamodel.Atom]struct{})
	for _, a := range aba.Assumptions() {
		reachable[a] = struct{}{}
	}
	rules := aba.Rules()
	for {
		markedAny := false
		for _, r := range rules {
			if _, ok := reachable[r.Head]; ok {
				continue
			}
			if allReachable(r.Body, reachable) {
				reachable[r.Head] = struct{}{}
				markedAny = true
			}
		}
		if !markedAny {
			break
		}
	}
	trimmed := make([]abamodel.Rule, 0, len(rules))
	for _, r := range rules {
		if _, ok := reachable[r.Head]; !ok {
			continue
		}
		if !allReachable(r.Body, reachable) {
			continue
		}
		trimmed = append(trimmed, r)
	}
	return trimmed
}

func allReachable(atoms []abamodel.Atom, reachable map[abamodel.Atom]struct{}) bool {
	for _, a := range atoms {
		if _, ok := reachable[a]; !ok {
			return false
		}
	}
	return true
}

// discoverLoops builds the rule dependency graph (edge body -> head for
// every rule and every body atom), computes SCCs of size >= 2, enumerates
// elementary cycles within each, and applies the union-closure pass,
// respecting maxLoops throughout (spec §4.C4).
func discoverLoops(assumptions []abamodel.Atom, rules []abamodel.Rule, maxLoops int) []Loop {
	diag.StopLoopCounting.Store(false)

	g := digraph.New()
	for _, r := range rules {
		for _, b := range r.Body {
			g.AddEdge(int(b), int(r.Head))
		}
	}

	var headSets [][]int
	for _, scc := range g.SCCs() {
		if len(scc) < 2 {
			continue
		}
		if maxLoops > 0 && len(headSets) >= maxLoops {
			break
		}
		sub := g.Subgraph(scc)
		remaining := 0
		if maxLoops > 0 {
			remaining = maxLoops - len(headSets)
			if remaining <= 0 {
				break
			}
		}
		cycles := sub.ElementaryCycles(remaining, &diag.StopLoopCounting)
		headSets = append(headSets, cycles...)
		diag.Loopf("scc processed", "scc_size", len(scc), "cycles_found", len(cycles))
	}

	if diag.StopLoopCounting.Load() {
		diag.Warnf("loop discovery cancelled before completion; encoding may be incomplete")
	}

	headSets = digraph.UnionClose(headSets, maxLoops)
	if maxLoops > 0 && len(headSets) >= maxLoops {
		diag.Warnf("loop discovery reached max_loops cap; some loops may be omitted", "max_loops", maxLoops)
	}

	loops := make([]Loop, 0, len(headSets))
	for _, hs := range headSets {
		heads := make(map[abamodel.Atom]struct{}, len(hs))
		for _, n := range hs {
			heads[abamodel.Atom(n)] = struct{}{}
		}
		loops = append(loops, Loop{Heads: heads, Support: supportOf(heads, rules)})
	}
	return loops
}

// supportOf returns, for a loop's head set, the indices of rules whose
// head is in the loop but whose body is disjoint from it — the rules that
// can "enter" the loop from outside (spec §3).
func supportOf(heads map[abamodel.Atom]struct{}, rules []abamodel.Rule) []abamodel.RuleIndex {
	var support []abamodel.RuleIndex
	for i, r := range rules {
		if _, in := heads[r.Head]; !in {
			continue
		}
		if bodyDisjoint(r.Body, heads) {
			support = append(support, abamodel.RuleIndex(i))
		}
	}
	sort.Slice(support, func(i, j int) bool { return support[i] < support[j] })
	return support
}

func bodyDisjoint(body []abamodel.Atom, heads map[abamodel.Atom]struct{}) bool {
	for _, b := range body {
		if _, in := heads[b]; in {
			return false
		}
	}
	return true
}
