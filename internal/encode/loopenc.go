package encode

import (
	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
)

// RuleHelpers emits spec §4.C6's rule-body-active clauses: for every rule
// i with body B, Ctx::Rule(i) <=> conjunction of Ctx::Base(b) for b in B.
// A fact (empty body) can never have its RBA true, since facts are
// grounded through Theory's single-rule case instead.
func RuleHelpers(ctx clause.Context, p *prepare.PreparedAba) clause.Clauses {
	var clauses clause.Clauses
	for i, r := range p.Rules() {
		idx := abamodel.RuleIndex(i)
		if r.IsFact() {
			clauses = append(clauses, clause.Of(ctx.Rule(idx).Neg()))
			continue
		}
		whole := make(clause.Clause, 0, len(r.Body)+1)
		for _, b := range r.Body {
			clauses = append(clauses, clause.Of(ctx.Rule(idx).Neg(), ctx.Base(b).Pos()))
			whole = append(whole, ctx.Base(b).Neg())
		}
		whole = append(whole, ctx.Rule(idx).Pos())
		clauses = append(clauses, whole)
	}
	return clauses
}

// LoopBreakers emits spec §4.C6's loop-breaker clauses: for every
// discovered loop j with heads H and support S, Ctx::Loop(j) <=> the
// disjunction of Ctx::Rule(s) for s in S, and for every h in H,
// Ctx::Base(h) -> Ctx::Loop(j) — the clause that prevents a circular set
// of rules from deriving its own heads with no outside support.
func LoopBreakers(ctx clause.Context, p *prepare.PreparedAba) clause.Clauses {
	var clauses clause.Clauses
	for j, l := range p.Loops() {
		loopLit := ctx.Loop(j)
		if len(l.Support) == 0 {
			clauses = append(clauses, clause.Of(loopLit.Neg()))
		} else {
			whole := make(clause.Clause, 0, len(l.Support)+1)
			whole = append(whole, loopLit.Neg())
			for _, s := range l.Support {
				clauses = append(clauses, clause.Of(ctx.Rule(s).Neg(), loopLit.Pos()))
				whole = append(whole, ctx.Rule(s).Pos())
			}
			clauses = append(clauses, whole)
		}
		for _, h := range l.HeadList() {
			clauses = append(clauses, clause.Of(ctx.Base(h).Neg(), loopLit.Pos()))
		}
	}
	return clauses
}
