package problem

import (
	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/solver"
)

// VerifyAdmissibleExtension decides whether a specific set of assumptions
// is admissible (spec §4.C7).
type VerifyAdmissibleExtension struct {
	Assumptions []abamodel.Atom
}

func (v VerifyAdmissibleExtension) Check(p *prepare.PreparedAba) error {
	return checkAssumptions(p, v.Assumptions)
}

func (v VerifyAdmissibleExtension) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	clauses := admissibilitySkeleton(p)
	clauses = append(clauses, pinSet(p, atomSet(v.Assumptions), clause.Attacker.Base)...)
	return clauses
}

func (v VerifyAdmissibleExtension) ConstructOutput(state solver.State) bool {
	return state.SatResult
}

// SampleAdmissibleExtension finds one non-empty admissible extension, if
// any exists (spec §4.C7).
type SampleAdmissibleExtension struct{}

func (SampleAdmissibleExtension) Check(*prepare.PreparedAba) error { return nil }

func (SampleAdmissibleExtension) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	clauses := admissibilitySkeleton(p)
	clauses = append(clauses, nonEmpty(p))
	return clauses
}

func (SampleAdmissibleExtension) ConstructOutput(state solver.State) []abamodel.Atom {
	return sortedAtoms(attackerSet(state.Prepared, state))
}

// DecideCredulousAdmissibility decides whether Element occurs in at least
// one admissible extension (spec §4.C7).
type DecideCredulousAdmissibility struct {
	Element abamodel.Atom
}

func (d DecideCredulousAdmissibility) Check(p *prepare.PreparedAba) error {
	return checkAssumption(p, d.Element)
}

func (d DecideCredulousAdmissibility) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	clauses := admissibilitySkeleton(p)
	clauses = append(clauses, clause.Of(clause.Attacker.Base(d.Element).Pos()))
	return clauses
}

func (d DecideCredulousAdmissibility) ConstructOutput(state solver.State) bool {
	return state.SatResult
}

// EnumerateAdmissibleExtensions enumerates every admissible extension of
// an Aba (spec §4.C7): a multi-shot problem that samples one non-empty
// extension per iteration, blocking each one found, and finally re-adds
// the empty set (always admissible, but excluded by the non-empty
// constraint every iteration relies on).
type EnumerateAdmissibleExtensions struct {
	found []map[abamodel.Atom]struct{}
}

func (e *EnumerateAdmissibleExtensions) Check(*prepare.PreparedAba) error { return nil }

func (e *EnumerateAdmissibleExtensions) AdditionalClauses(p *prepare.PreparedAba, iteration int) clause.Clauses {
	if iteration == 0 {
		clauses := admissibilitySkeleton(p)
		clauses = append(clauses, nonEmpty(p))
		return clauses
	}
	return clause.Clauses{blockingClause(p, e.found[iteration-1])}
}

func (e *EnumerateAdmissibleExtensions) Feedback(state solver.State, iteration int) solver.LoopControl {
	if !state.SatResult {
		return solver.Stop
	}
	e.found = append(e.found, attackerSet(state.Prepared, state))
	return solver.Continue
}

func (e *EnumerateAdmissibleExtensions) ConstructOutput(_ solver.State, _ int) [][]abamodel.Atom {
	out := make([][]abamodel.Atom, 0, len(e.found)+1)
	for _, f := range e.found {
		out = append(out, sortedAtoms(f))
	}
	out = append(out, nil) // the empty set, always admissible
	return out
}

func sortedAtoms(set map[abamodel.Atom]struct{}) []abamodel.Atom {
	out := make([]abamodel.Atom, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
