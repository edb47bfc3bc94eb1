package problem

import (
	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/solver"
)

// completenessExtra emits, for every (a, ā), Th(ā) ∨ ThS(a): an assumption
// whose contrary the attacker cannot derive must itself be in S — the
// defining property of completeness (spec §4.C7).
func completenessExtra(p *prepare.PreparedAba) clause.Clauses {
	var clauses clause.Clauses
	for _, a := range p.Assumptions() {
		contrary, _ := p.Contrary(a)
		clauses = append(clauses, clause.Of(clause.Candidate.Base(contrary).Pos(), clause.Attacker.Base(a).Pos()))
	}
	return clauses
}

func completeSkeleton(p *prepare.PreparedAba) clause.Clauses {
	clauses := admissibilitySkeleton(p)
	clauses = append(clauses, completenessExtra(p)...)
	return clauses
}

// EnumerateCompleteExtensions enumerates every complete extension of an
// Aba (spec §4.C7): unlike admissible enumeration, the empty set is not
// re-added — it is a normal candidate under the completeness skeleton and
// will be found by the solver if it qualifies.
type EnumerateCompleteExtensions struct {
	found []map[abamodel.Atom]struct{}
}

func (e *EnumerateCompleteExtensions) Check(*prepare.PreparedAba) error { return nil }

func (e *EnumerateCompleteExtensions) AdditionalClauses(p *prepare.PreparedAba, iteration int) clause.Clauses {
	if iteration == 0 {
		return completeSkeleton(p)
	}
	return clause.Clauses{blockingClause(p, e.found[iteration-1])}
}

func (e *EnumerateCompleteExtensions) Feedback(state solver.State, iteration int) solver.LoopControl {
	if !state.SatResult {
		return solver.Stop
	}
	e.found = append(e.found, attackerSet(state.Prepared, state))
	return solver.Continue
}

func (e *EnumerateCompleteExtensions) ConstructOutput(_ solver.State, _ int) [][]abamodel.Atom {
	out := make([][]abamodel.Atom, 0, len(e.found))
	for _, f := range e.found {
		out = append(out, sortedAtoms(f))
	}
	return out
}

// DecideCredulousComplete decides whether Element occurs in at least one
// complete extension (spec §4.C7).
type DecideCredulousComplete struct {
	Element abamodel.Atom
}

func (d DecideCredulousComplete) Check(p *prepare.PreparedAba) error {
	return checkAtom(p, d.Element)
}

func (d DecideCredulousComplete) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	clauses := completeSkeleton(p)
	clauses = append(clauses, clause.Of(clause.Attacker.Base(d.Element).Pos()))
	return clauses
}

func (d DecideCredulousComplete) ConstructOutput(state solver.State) bool {
	return state.SatResult
}
