package problem

import (
	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/solver"
)

// ConflictFreeness decides whether a set of assumptions is conflict-free
// (spec §4.C7): it uses only the candidate theory context.
type ConflictFreeness struct {
	Assumptions []abamodel.Atom
}

func (c ConflictFreeness) Check(p *prepare.PreparedAba) error {
	return checkAssumptions(p, c.Assumptions)
}

func (c ConflictFreeness) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	clauses := pinSet(p, atomSet(c.Assumptions), clause.Candidate.Base)
	for _, a := range p.Assumptions() {
		contrary, _ := p.Contrary(a)
		clauses = append(clauses, clause.Of(clause.Candidate.Base(a).Neg(), clause.Candidate.Base(contrary).Neg()))
	}
	return clauses
}

func (c ConflictFreeness) ConstructOutput(state solver.State) bool {
	return state.SatResult
}
