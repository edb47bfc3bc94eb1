package parser

import (
	"strings"
	"testing"

	"github.com/aba2sat/aba2sat/internal/abamodel"
)

func TestParseSpecExample(t *testing.T) {
	// spec §6.1's worked example: a=1/contrary r=2; b=3/contrary s=4;
	// c=5/contrary t=6; p=7<-{q=8,a=1}; q=8<-{}; r=2<-{b=3,c=5}.
	input := `p aba 8
# a comment line
a 1
a 3
a 5
c 1 2
c 3 4
c 5 6
r 7 8 1
r 8
r 2 3 5
`
	aba, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !aba.ContainsAssumption(1) || !aba.ContainsAssumption(3) || !aba.ContainsAssumption(5) {
		t.Error("expected atoms 1, 3, 5 to be registered as assumptions")
	}
	contrary, ok := aba.Contrary(1)
	if !ok || contrary != 2 {
		t.Errorf("Contrary(1) = (%v, %v); want (2, true)", contrary, ok)
	}
	if len(aba.Rules()) != 3 {
		t.Fatalf("len(Rules()) = %d; want 3", len(aba.Rules()))
	}
}

func TestParseRejectsMissingPLine(t *testing.T) {
	_, err := Parse(strings.NewReader("a 1\nc 1 2\n"))
	if err == nil {
		t.Fatal("expected an error for input missing the mandatory p-line")
	}
}

func TestParseRejectsMalformedPLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba notanumber\n"))
	if err == nil {
		t.Fatal("expected an error for a non-numeric atom count")
	}
}

func TestParseRejectsAtomZero(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba 2\na 0\n"))
	if err == nil {
		t.Fatal("expected an error for a declaration of the reserved atom 0")
	}
}

func TestParseRejectsAssumptionWithoutContrary(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba 2\na 1\n"))
	if err == nil {
		t.Fatal("expected an error: assumption 1 declared via \"a\" but never given a contrary via \"c\"")
	}
}

func TestParseRejectsContraryWithoutAssumption(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba 2\nc 1 2\n"))
	if err == nil {
		t.Fatal("expected an error: contrary declared via \"c\" for an atom never declared an assumption via \"a\"")
	}
}

func TestParseRejectsUnrecognizedLineKind(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba 2\nx 1\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognized line kind")
	}
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	input := "p aba 1\n\n# just a comment\n\nr 1\n"
	aba, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(aba.Rules()) != 1 {
		t.Fatalf("len(Rules()) = %d; want 1", len(aba.Rules()))
	}
}

func TestParseRuleWithEmptyBodyIsAFact(t *testing.T) {
	aba, err := Parse(strings.NewReader("p aba 1\nr 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !aba.Rules()[0].IsFact() {
		t.Error("rule with no body atoms should be a fact")
	}
}

func TestParseRuleWithMultiAtomBody(t *testing.T) {
	aba, err := Parse(strings.NewReader("p aba 8\na 1\na 3\nc 1 2\nc 3 4\nr 5 1 3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []abamodel.Atom{1, 3}
	got := aba.Rules()[0].Body
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("rule body = %v; want %v", got, want)
	}
}

func TestParseErrorReportsLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("p aba 2\na 1\nc 1 2\nx garbage\n"))
	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %T; want *parser.Error", err)
	}
	if perr.Line != 4 {
		t.Errorf("Line = %d; want 4", perr.Line)
	}
}
