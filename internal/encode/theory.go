// Package encode implements spec §4.C5 (theory encoder) and §4.C6
// (loop/rule-helper encoder): CNF translation of rule derivation and loop
// breaking, parameterised by a literal Context so the same logic serves
// both the framework theory and the candidate-set theory.
package encode

import (
	"sort"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
)

// Theory emits the clauses of spec §4.C5: for every rule head, an
// equivalence between Ctx::Base(head) and the disjunction of that head's
// rule-body-active literals, plus a suppression clause for atoms that can
// never be derived.
func Theory(ctx clause.Context, p *prepare.PreparedAba) clause.Clauses {
	rulesByHead := make(map[abamodel.Atom][]abamodel.RuleIndex)
	for i, r := range p.Rules() {
		rulesByHead[r.Head] = append(rulesByHead[r.Head], abamodel.RuleIndex(i))
	}

	var noRuleAtoms []abamodel.Atom
	for atom := range p.Universe() {
		if p.ContainsAssumption(atom) {
			continue
		}
		if _, ok := rulesByHead[atom]; ok {
			continue
		}
		noRuleAtoms = append(noRuleAtoms, atom)
	}
	sortAtoms(noRuleAtoms)

	heads := make([]abamodel.Atom, 0, len(rulesByHead))
	for h := range rulesByHead {
		heads = append(heads, h)
	}
	sortAtoms(heads)

	var clauses clause.Clauses
	for _, atom := range noRuleAtoms {
		clauses = append(clauses, clause.Of(ctx.Base(atom).Neg()))
	}
	for _, head := range heads {
		ruleIDs := rulesByHead[head]
		switch len(ruleIDs) {
		case 1:
			i := ruleIDs[0]
			clauses = append(clauses,
				clause.Of(ctx.Base(head).Pos(), ctx.Rule(i).Neg()),
				clause.Of(ctx.Base(head).Neg(), ctx.Rule(i).Pos()),
			)
		default:
			last := make(clause.Clause, 0, len(ruleIDs)+1)
			last = append(last, ctx.Base(head).Neg())
			for _, i := range ruleIDs {
				clauses = append(clauses, clause.Of(ctx.Base(head).Pos(), ctx.Rule(i).Neg()))
				last = append(last, ctx.Rule(i).Pos())
			}
			clauses = append(clauses, last)
		}
	}
	return clauses
}

func sortAtoms(s []abamodel.Atom) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
