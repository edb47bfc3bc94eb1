package solver

import (
	"errors"
	"testing"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/clause"
	"github.com/aba2sat/aba2sat/internal/prepare"
)

// trivialProblem adds no clauses beyond the framework theory and reports
// whether the framework theory alone is satisfiable.
type trivialProblem struct {
	checkErr error
}

func (p trivialProblem) Check(*prepare.PreparedAba) error                    { return p.checkErr }
func (trivialProblem) AdditionalClauses(*prepare.PreparedAba) clause.Clauses { return nil }
func (trivialProblem) ConstructOutput(state State) bool                     { return state.SatResult }

func TestSolve_TheoryAloneIsSatisfiable(t *testing.T) {
	aba := abamodel.New().WithAssumption(1, 2).WithRule(3, 1)
	got, err := Solve[bool](trivialProblem{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("Solve() = false; an unconstrained framework theory should always be satisfiable")
	}
}

func TestSolve_PropagatesCheckError(t *testing.T) {
	wantErr := &ProblemCheckFailedError{Reason: "boom"}
	_, err := Solve[bool](trivialProblem{checkErr: wantErr}, abamodel.New(), prepare.Options{})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v; want %v", err, wantErr)
	}
}

// unsatProblem pins atom 1's candidate Base literal to both polarities,
// guaranteeing the combined theory is unsatisfiable.
type unsatProblem struct{}

func (unsatProblem) Check(*prepare.PreparedAba) error { return nil }
func (unsatProblem) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses {
	return clause.Clauses{
		clause.Of(clause.Candidate.Base(1).Pos()),
		clause.Of(clause.Candidate.Base(1).Neg()),
	}
}
func (unsatProblem) ConstructOutput(state State) bool { return state.SatResult }

func TestSolve_UnsatisfiableProblemReportsFalse(t *testing.T) {
	aba := abamodel.New().WithRule(1)
	got, err := Solve[bool](unsatProblem{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("Solve() = true; want false for a directly contradictory unit-clause pair")
	}
}

func TestSolve_StateValueUnreachableWhenUnsat(t *testing.T) {
	aba := abamodel.New().WithRule(1)
	var captured State
	capture := problemFunc{
		check:      func(*prepare.PreparedAba) error { return nil },
		additional: unsatProblem{}.AdditionalClauses,
		construct: func(state State) bool {
			captured = state
			return state.SatResult
		},
	}
	if _, err := Solve[bool](capture, aba, prepare.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := captured.Value(1); ok {
		t.Error("State.Value() should report !ok once the solve result is UNSAT")
	}
}

// countingMultishot adds no clauses of its own in any iteration and
// stops after a fixed number of rounds, exercising the multishot loop
// plumbing without depending on problem-level semantics.
type countingMultishot struct {
	rounds int
}

func (countingMultishot) Check(*prepare.PreparedAba) error { return nil }
func (countingMultishot) AdditionalClauses(p *prepare.PreparedAba, iteration int) clause.Clauses {
	return nil
}
func (c *countingMultishot) Feedback(state State, iteration int) LoopControl {
	c.rounds++
	if iteration >= 2 {
		return Stop
	}
	return Continue
}
func (c *countingMultishot) ConstructOutput(state State, totalIterations int) int {
	return totalIterations
}

func TestMultishotSolve_StopsAfterFeedbackSignal(t *testing.T) {
	aba := abamodel.New().WithAssumption(1, 2)
	p := &countingMultishot{}
	got, err := MultishotSolve[int](p, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("totalIterations = %d; want 2", got)
	}
	if p.rounds != 3 {
		t.Errorf("Feedback called %d times; want 3 (iterations 0,1,2)", p.rounds)
	}
}

// problemFunc adapts plain functions to the Problem[bool] interface for
// tests that need to inspect the State passed to ConstructOutput.
type problemFunc struct {
	check      func(*prepare.PreparedAba) error
	additional func(*prepare.PreparedAba) clause.Clauses
	construct  func(State) bool
}

func (f problemFunc) Check(p *prepare.PreparedAba) error                     { return f.check(p) }
func (f problemFunc) AdditionalClauses(p *prepare.PreparedAba) clause.Clauses { return f.additional(p) }
func (f problemFunc) ConstructOutput(state State) bool                      { return f.construct(state) }
