package problem

import (
	"errors"
	"sort"
	"testing"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/solver"
)

// s1Framework builds spec §8 scenario S1/S2/S3's framework:
// a=1/r=2, b=3/s=4, c=5/t=6; p=7<-{q=8,a=1}; q=8<-{}; r=2<-{b=3,c=5}.
func s1Framework() *abamodel.Aba {
	return abamodel.New().
		WithAssumption(1, 2).
		WithAssumption(3, 4).
		WithAssumption(5, 6).
		WithRule(7, 8, 1).
		WithRule(8).
		WithRule(2, 3, 5)
}

func TestConflictFreeness_S1(t *testing.T) {
	aba := s1Framework()
	cases := []struct {
		name string
		set  []abamodel.Atom
		want bool
	}{
		{"empty", nil, true},
		{"a", []abamodel.Atom{1}, true},
		{"b", []abamodel.Atom{3}, true},
		{"c", []abamodel.Atom{5}, true},
		{"ab", []abamodel.Atom{1, 3}, true},
		{"ac", []abamodel.Atom{1, 5}, true},
		{"bc", []abamodel.Atom{3, 5}, true},
		{"abc", []abamodel.Atom{1, 3, 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := solver.Solve[bool](ConflictFreeness{Assumptions: c.set}, aba, prepare.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("ConflictFreeness(%v) = %v; want %v", c.set, got, c.want)
			}
		})
	}
}

func TestConflictFreeness_RejectsUnknownAssumption(t *testing.T) {
	aba := s1Framework()
	_, err := solver.Solve[bool](ConflictFreeness{Assumptions: []abamodel.Atom{42}}, aba, prepare.Options{})
	var checkErr *solver.ProblemCheckFailedError
	if !errors.As(err, &checkErr) {
		t.Fatalf("err = %v; want a *solver.ProblemCheckFailedError", err)
	}
}

func TestVerifyAdmissibleExtension_S2(t *testing.T) {
	aba := s1Framework()
	cases := []struct {
		name string
		set  []abamodel.Atom
		want bool
	}{
		{"empty", nil, true},
		{"a", []abamodel.Atom{1}, false},
		{"ab", []abamodel.Atom{1, 3}, false},
		{"b", []abamodel.Atom{3}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := solver.Solve[bool](VerifyAdmissibleExtension{Assumptions: c.set}, aba, prepare.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("VerifyAdmissibleExtension(%v) = %v; want %v", c.set, got, c.want)
			}
		})
	}
}

func TestVerifyAdmissibleExtension_RejectsUnknownAssumption(t *testing.T) {
	aba := s1Framework()
	_, err := solver.Solve[bool](VerifyAdmissibleExtension{Assumptions: []abamodel.Atom{42}}, aba, prepare.Options{})
	var checkErr *solver.ProblemCheckFailedError
	if !errors.As(err, &checkErr) {
		t.Fatalf("err = %v; want a *solver.ProblemCheckFailedError", err)
	}
}

func TestDecideCredulousAdmissibility_RejectsUnknownAssumption(t *testing.T) {
	aba := s1Framework()
	_, err := solver.Solve[bool](DecideCredulousAdmissibility{Element: 42}, aba, prepare.Options{})
	var checkErr *solver.ProblemCheckFailedError
	if !errors.As(err, &checkErr) {
		t.Fatalf("err = %v; want a *solver.ProblemCheckFailedError", err)
	}
}

func TestDecideCredulousComplete_RejectsUnknownAtom(t *testing.T) {
	aba := s1Framework()
	_, err := solver.Solve[bool](DecideCredulousComplete{Element: 42}, aba, prepare.Options{})
	var checkErr *solver.ProblemCheckFailedError
	if !errors.As(err, &checkErr) {
		t.Fatalf("err = %v; want a *solver.ProblemCheckFailedError", err)
	}
}

func TestEnumerateAdmissibleExtensions_S3(t *testing.T) {
	// S1's framework plus t=6<-{a=1,b=3}.
	aba := s1Framework().WithRule(6, 1, 3)

	got, err := solver.MultishotSolve[[][]abamodel.Atom](&EnumerateAdmissibleExtensions{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]abamodel.Atom{nil, {1, 3}, {3}, {3, 5}}
	assertSameExtensionSet(t, got, want)
}

func TestEnumerateAdmissibleExtensions_S4(t *testing.T) {
	// a=1/contrary p=2; b=3/contrary q=4; c=5/contrary r=6;
	// p=2<-{b=3}; q=4<-{a=1,c=5}.
	aba := abamodel.New().
		WithAssumption(1, 2).
		WithAssumption(3, 4).
		WithAssumption(5, 6).
		WithRule(2, 3).
		WithRule(4, 1, 5)

	got, err := solver.MultishotSolve[[][]abamodel.Atom](&EnumerateAdmissibleExtensions{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]abamodel.Atom{nil, {3}, {5}, {1, 5}, {3, 5}}
	assertSameExtensionSet(t, got, want)
}

func TestEnumerateAdmissibleExtensions_S5_UnsupportedChain(t *testing.T) {
	// a=1/contrary b=2; b=2/contrary c=3; d=4; c=3<-{a=1,d=4}; d=4<-{c=3}.
	aba := abamodel.New().
		WithAssumption(1, 2).
		WithAssumption(2, 3).
		WithRule(3, 1, 4).
		WithRule(4, 3)

	got, err := solver.MultishotSolve[[][]abamodel.Atom](&EnumerateAdmissibleExtensions{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][]abamodel.Atom{nil, {2}}
	assertSameExtensionSet(t, got, want)
}

func TestDecideCredulousComplete_S6(t *testing.T) {
	// a=1/contrary b=2; c=3; d=4; b=2<-{a=1}; b=2<-{c=3}; c=3<-{b=2}; d=4<-{b=2}.
	aba := abamodel.New().
		WithAssumption(1, 2).
		WithRule(2, 1).
		WithRule(2, 3).
		WithRule(3, 2).
		WithRule(4, 2)

	got, err := solver.Solve[bool](DecideCredulousComplete{Element: 4}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("DecideCredulousComplete(d) = true; want false (spec S6): d is never in a complete extension")
	}
}

func TestEnumerateAdmissibleExtensions_AlwaysIncludesEmptySet(t *testing.T) {
	aba := s1Framework()
	got, err := solver.MultishotSolve[[][]abamodel.Atom](&EnumerateAdmissibleExtensions{}, aba, prepare.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, ext := range got {
		if len(ext) == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("EnumerateAdmissibleExtensions() = %v; want it to include the empty set", got)
	}
}

func TestEnumerateCompleteExtensions_Terminates(t *testing.T) {
	aba := s1Framework()
	// Just exercise the multishot loop end to end; termination (rather than
	// an infinite blocking-clause cycle) is the property under test.
	if _, err := solver.MultishotSolve[[][]abamodel.Atom](&EnumerateCompleteExtensions{}, aba, prepare.Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertSameExtensionSet(t *testing.T, got, want [][]abamodel.Atom) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v; want %v (different cardinality)", got, want)
	}
	norm := func(in [][]abamodel.Atom) []string {
		out := make([]string, len(in))
		for i, ext := range in {
			sorted := append([]abamodel.Atom(nil), ext...)
			sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
			s := ""
			for _, a := range sorted {
				s += a.String() + ","
			}
			out[i] = s
		}
		sort.Strings(out)
		return out
	}
	a, b := norm(got), norm(want)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("got %v; want %v (as sets)", got, want)
			return
		}
	}
}
