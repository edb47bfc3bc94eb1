// Package solver implements spec §4.C8: the single-shot and multi-shot
// drivers that feed a problem's clauses to an incremental SAT solver,
// extract the model, and (for enumeration problems) loop with blocking
// clauses. Grounded on go-tony/schema/formula_builder.go's use of
// github.com/go-air/gini as the CNF-to-SAT backend.
package solver

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/diag"
	"github.com/aba2sat/aba2sat/internal/encode"
	"github.com/aba2sat/aba2sat/internal/prepare"
)

// ProblemCheckFailedError is raised by a problem's pre-check, before the
// solver is ever invoked (spec §4.C7's "Verification pre-checks").
type ProblemCheckFailedError struct {
	Reason string
}

func (e *ProblemCheckFailedError) Error() string {
	return fmt.Sprintf("problem check failed: %s", e.Reason)
}

// SatCallInterruptedError is surfaced when the underlying solver returns
// the "unknown" result (spec §4.C8 step 6, §5's cancellation contract).
type SatCallInterruptedError struct{}

func (e *SatCallInterruptedError) Error() string {
	return "sat solver call was interrupted"
}

// State is the read-only view a problem's ConstructOutput/Feedback methods
// receive after a SAT call (spec §4.C8 step 7): the raw result, the
// prepared framework, the literal mapper, and the solver's model.
type State struct {
	SatResult bool
	Prepared  *prepare.PreparedAba
	Mapper    *clause.Mapper
	model     *gini.Gini
}

// Value reports the truth of a literal in the last solved model, mirroring
// clause.ValueSource so Mapper.Reconstruct can consume a State directly.
func (s State) Value(id int32) (bool, bool) {
	if s.model == nil || !s.SatResult {
		return false, false
	}
	return s.model.Value(z.Dimacs2Lit(int(id))), true
}

// Problem is a single-shot reasoning task over a PreparedAba (spec
// §4.C7/C8): it contributes additional clauses beyond the framework
// theory, and turns a solved (or unsat) State into a typed result.
type Problem[T any] interface {
	Check(p *prepare.PreparedAba) error
	AdditionalClauses(p *prepare.PreparedAba) clause.Clauses
	ConstructOutput(state State) T
}

// LoopControl tells MultishotSolve whether to keep iterating.
type LoopControl int

const (
	// Continue requests another iteration.
	Continue LoopControl = iota
	// Stop ends the loop after this iteration's feedback.
	Stop
)

// MultishotProblem is an enumeration task that re-feeds the same solver
// across several iterations, adding a blocking clause each time (spec
// §4.C8's multishot_solve).
type MultishotProblem[T any] interface {
	Check(p *prepare.PreparedAba) error
	AdditionalClauses(p *prepare.PreparedAba, iteration int) clause.Clauses
	Feedback(state State, iteration int) LoopControl
	ConstructOutput(state State, totalIterations int) T
}

// theoryClauses assembles the framework theory (spec §4.C8 step 4): the
// candidate-context theory plus its loop breakers and rule helpers.
func theoryClauses(p *prepare.PreparedAba) clause.Clauses {
	var all clause.Clauses
	all = append(all, encode.Theory(clause.Candidate, p)...)
	all = append(all, encode.RuleHelpers(clause.Candidate, p)...)
	all = append(all, encode.LoopBreakers(clause.Candidate, p)...)
	return all
}

func feed(g *gini.Gini, m *clause.Mapper, clauses clause.Clauses) {
	for _, raw := range m.RawClauses(clauses) {
		for _, id := range raw {
			g.Add(z.Dimacs2Lit(int(id)))
		}
		g.Add(0)
	}
}

// Solve runs a single-shot problem over aba (spec §4.C8's solve).
func Solve[T any](p Problem[T], aba *abamodel.Aba, opts prepare.Options) (T, error) {
	var zero T
	prepared := prepare.Prepare(aba, opts)
	if err := p.Check(prepared); err != nil {
		return zero, err
	}

	m := clause.NewMapper()
	g := gini.New()

	theory := theoryClauses(prepared)
	diag.Clauses("theory", theory)
	feed(g, m, theory)

	additional := p.AdditionalClauses(prepared)
	diag.Clauses("problem", additional)
	feed(g, m, additional)

	result := g.Solve()
	if result == 0 {
		return zero, &SatCallInterruptedError{}
	}
	state := State{SatResult: result == 1, Prepared: prepared, Mapper: m, model: g}
	if state.SatResult {
		diag.Model(m.Reconstruct(state))
	}
	return p.ConstructOutput(state), nil
}

// MultishotSolve runs an enumeration problem over aba (spec §4.C8's
// multishot_solve), retaining every clause added across iterations so the
// solver reuses its learned clauses incrementally.
func MultishotSolve[T any](p MultishotProblem[T], aba *abamodel.Aba, opts prepare.Options) (T, error) {
	var zero T
	prepared := prepare.Prepare(aba, opts)
	if err := p.Check(prepared); err != nil {
		return zero, err
	}

	m := clause.NewMapper()
	g := gini.New()
	feed(g, m, theoryClauses(prepared))

	iteration := 0
	var state State
	for {
		additional := p.AdditionalClauses(prepared, iteration)
		diag.Clauses(fmt.Sprintf("problem[%d]", iteration), additional)
		feed(g, m, additional)

		result := g.Solve()
		if result == 0 {
			return zero, &SatCallInterruptedError{}
		}
		state = State{SatResult: result == 1, Prepared: prepared, Mapper: m, model: g}
		if state.SatResult {
			diag.Model(m.Reconstruct(state))
		}

		if p.Feedback(state, iteration) == Stop {
			break
		}
		iteration++
	}
	return p.ConstructOutput(state, iteration), nil
}
