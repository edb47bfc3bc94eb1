// Package parser reads the ICCMA ABA text format (spec §6.1) into an
// abamodel.Aba. Grounded on original_source/src/parser.rs's grammar; since
// no line-grammar combinator library appears anywhere in the pack, this is
// written as a plain bufio.Scanner line-scanner rather than reaching for
// an unfamiliar parser-combinator dependency.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aba2sat/aba2sat/internal/abamodel"
)

// Error is a parse failure, carrying the 1-based line number and the
// offending text (spec §7's "includes byte offset / line number when
// available").
type Error struct {
	Line int
	Text string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d (%q): %s", e.Line, e.Text, e.Msg)
}

// Parse reads an ABA framework from r. The first non-blank line must be
// the `p aba <n>` declaration (a comment there is an error); every
// subsequent line is a
// comment, assumption, contrary, or rule declaration, in any order.
func Parse(r io.Reader) (*abamodel.Aba, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	sawPLine := false
	declaredAtoms := 0

	aba := abamodel.New()
	declaredAssumptions := make(map[abamodel.Atom]struct{})
	declaredContraries := make(map[abamodel.Atom]struct{})

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !sawPLine {
			n, err := parsePLine(trimmed)
			if err != nil {
				return nil, &Error{Line: lineNo, Text: line, Msg: err.Error()}
			}
			declaredAtoms = n
			sawPLine = true
			continue
		}

		if err := parseBodyLine(trimmed, aba, declaredAssumptions, declaredContraries); err != nil {
			return nil, &Error{Line: lineNo, Text: line, Msg: err.Error()}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading aba input: %w", err)
	}
	if !sawPLine {
		return nil, &Error{Line: lineNo, Msg: "missing mandatory \"p aba <n>\" line"}
	}

	if err := validateContraries(declaredAssumptions, declaredContraries); err != nil {
		return nil, err
	}
	_ = declaredAtoms // the declared atom count is not checked against the atoms used

	return aba, nil
}

func parsePLine(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "p" || fields[1] != "aba" {
		return 0, fmt.Errorf(`expected "p aba <n>", got %q`, line)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid atom count %q", fields[2])
	}
	return n, nil
}

func parseBodyLine(line string, aba *abamodel.Aba, assumptions, contraries map[abamodel.Atom]struct{}) error {
	if strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "a":
		if len(fields) != 2 {
			return fmt.Errorf(`expected "a <x>", got %q`, line)
		}
		x, err := parseAtom(fields[1])
		if err != nil {
			return err
		}
		assumptions[x] = struct{}{}
	case "c":
		if len(fields) != 3 {
			return fmt.Errorf(`expected "c <x> <y>", got %q`, line)
		}
		x, err := parseAtom(fields[1])
		if err != nil {
			return err
		}
		y, err := parseAtom(fields[2])
		if err != nil {
			return err
		}
		aba.WithAssumption(x, y)
		contraries[x] = struct{}{}
	case "r":
		if len(fields) < 2 {
			return fmt.Errorf(`expected "r <h> <b1> <b2> ...", got %q`, line)
		}
		h, err := parseAtom(fields[1])
		if err != nil {
			return err
		}
		body := make([]abamodel.Atom, 0, len(fields)-2)
		for _, f := range fields[2:] {
			b, err := parseAtom(f)
			if err != nil {
				return err
			}
			body = append(body, b)
		}
		aba.WithRule(h, body...)
	default:
		return fmt.Errorf("unrecognized line kind %q", fields[0])
	}
	return nil
}

func parseAtom(field string) (abamodel.Atom, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid atom %q", field)
	}
	if n == 0 {
		return 0, fmt.Errorf("atom 0 is reserved and may not be declared")
	}
	return abamodel.Atom(n), nil
}

func validateContraries(assumptions, contraries map[abamodel.Atom]struct{}) error {
	for a := range assumptions {
		if _, ok := contraries[a]; !ok {
			return &Error{Msg: fmt.Sprintf("assumption %s declared via \"a\" has no contrary declared via \"c\"", a)}
		}
	}
	for c := range contraries {
		if _, ok := assumptions[c]; !ok {
			return &Error{Msg: fmt.Sprintf("contrary declared via \"c\" for %s which was never declared an assumption via \"a\"", c)}
		}
	}
	return nil
}
