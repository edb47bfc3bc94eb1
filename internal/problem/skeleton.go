// Package problem implements spec §4.C7: the per-task additional clauses
// layered on top of the framework theory, each satisfying
// solver.Problem or solver.MultishotProblem.
package problem

import (
	"fmt"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/encode"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/solver"
)

// admissibilitySkeleton emits the shared adversarial clauses of spec
// §4.C7: the set-context theory ThS (the candidate set S must itself obey
// rule derivation, not float as a free assignment), then the candidate
// theory Th forced to model the attacker that defeats exactly the
// assumptions whose contraries ThS cannot derive, no attacker may defeat
// an element of S, and S is conflict-free.
func admissibilitySkeleton(p *prepare.PreparedAba) clause.Clauses {
	var clauses clause.Clauses
	clauses = append(clauses, encode.Theory(clause.Attacker, p)...)
	clauses = append(clauses, encode.RuleHelpers(clause.Attacker, p)...)
	clauses = append(clauses, encode.LoopBreakers(clause.Attacker, p)...)
	for _, a := range p.Assumptions() {
		contrary, _ := p.Contrary(a)
		clauses = append(clauses,
			clause.Of(clause.Candidate.Base(a).Pos(), clause.Attacker.Base(contrary).Pos()),
			clause.Of(clause.Candidate.Base(a).Neg(), clause.Attacker.Base(contrary).Neg()),
			clause.Of(clause.Candidate.Base(contrary).Neg(), clause.Attacker.Base(a).Neg()),
			clause.Of(clause.Attacker.Base(a).Neg(), clause.Attacker.Base(contrary).Neg()),
		)
	}
	return clauses
}

// pinSet emits unit clauses forcing lit(a) positive for a in set and
// negative otherwise, over every assumption of p — the pattern shared by
// ConflictFreeness and VerifyAdmissibleExtension.
func pinSet(p *prepare.PreparedAba, set map[abamodel.Atom]struct{}, lit func(abamodel.Atom) clause.Literal) clause.Clauses {
	var clauses clause.Clauses
	for _, a := range p.Assumptions() {
		if _, in := set[a]; in {
			clauses = append(clauses, clause.Of(lit(a).Pos()))
		} else {
			clauses = append(clauses, clause.Of(lit(a).Neg()))
		}
	}
	return clauses
}

// nonEmpty emits the non-empty constraint ⋁_{a in A} ThS(a).
func nonEmpty(p *prepare.PreparedAba) clause.Clause {
	disjunction := make(clause.Clause, 0, len(p.Assumptions()))
	for _, a := range p.Assumptions() {
		disjunction = append(disjunction, clause.Attacker.Base(a).Pos())
	}
	return disjunction
}

// blockingClause forbids exactly the assignment in `found` from
// reoccurring over A: for every a in A, ¬ThS(a) if a was in found else
// ThS(a) (spec §4.C7's enumeration blocking-clause scheme).
func blockingClause(p *prepare.PreparedAba, found map[abamodel.Atom]struct{}) clause.Clause {
	c := make(clause.Clause, 0, len(p.Assumptions()))
	for _, a := range p.Assumptions() {
		if _, in := found[a]; in {
			c = append(c, clause.Attacker.Base(a).Neg())
		} else {
			c = append(c, clause.Attacker.Base(a).Pos())
		}
	}
	return c
}

// attackerSet reads the assumptions the attacker-set theory derived in
// the last solved model.
func attackerSet(p *prepare.PreparedAba, state solver.State) map[abamodel.Atom]struct{} {
	out := make(map[abamodel.Atom]struct{})
	for _, a := range p.Assumptions() {
		id, ok := state.Mapper.Lookup(clause.Attacker.Base(a).Pos())
		if !ok {
			continue
		}
		if v, ok := state.Value(id); ok && v {
			out[a] = struct{}{}
		}
	}
	return out
}

func atomSet(atoms []abamodel.Atom) map[abamodel.Atom]struct{} {
	out := make(map[abamodel.Atom]struct{}, len(atoms))
	for _, a := range atoms {
		out[a] = struct{}{}
	}
	return out
}

func checkAssumption(p *prepare.PreparedAba, a abamodel.Atom) error {
	if !p.ContainsAssumption(a) {
		return &solver.ProblemCheckFailedError{Reason: fmt.Sprintf("assumption %s not present in ABA framework", a)}
	}
	return nil
}

func checkAssumptions(p *prepare.PreparedAba, set []abamodel.Atom) error {
	for _, a := range set {
		if err := checkAssumption(p, a); err != nil {
			return err
		}
	}
	return nil
}

func checkAtom(p *prepare.PreparedAba, a abamodel.Atom) error {
	if !p.ContainsAtom(a) {
		return &solver.ProblemCheckFailedError{Reason: fmt.Sprintf("element %s not present in ABA framework", a)}
	}
	return nil
}
