package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/aba2sat/aba2sat/internal/abamodel"
	"github.com/aba2sat/aba2sat/internal/parser"
	"github.com/aba2sat/aba2sat/internal/prepare"
	"github.com/aba2sat/aba2sat/internal/problem"
	"github.com/aba2sat/aba2sat/internal/solver"
)

var errBrokenPipe = errors.New("broken pipe")

// subcommand names index by both their long form and ICCMA alias (spec
// §6.2's table).
var aliases = map[string]string{
	"verify-admissibility":           "ve-ad",
	"ve-ad":                          "ve-ad",
	"decide-credulous-admissibility": "dc-ad",
	"dc-ad":                          "dc-ad",
	"enumerate-admissibility":        "ee-ad",
	"ee-ad":                          "ee-ad",
	"sample-admissibility":           "se-ad",
	"se-ad":                          "se-ad",
	"enumerate-complete":             "ee-co",
	"ee-co":                          "ee-co",
	"decide-credulous-complete":      "dc-co",
	"dc-co":                          "dc-co",
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("missing subcommand; expected one of ve-ad, dc-ad, ee-ad, se-ad, ee-co, dc-co")
	}
	canonical, ok := aliases[args[0]]
	if !ok {
		return fmt.Errorf("unrecognized subcommand %q", args[0])
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	file := fs.String("f", "", "input aba file")
	maxLoops := fs.Int("l", 0, "optional cap on loop discovery (0 = unbounded)")
	var set atomListFlag
	fs.Var(&set, "s", "atom in the set under test (repeatable)")
	query := fs.String("a", "", "atom to query")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-f <path> is required")
	}

	aba, err := loadAba(*file)
	if err != nil {
		return err
	}
	opts := prepare.Options{MaxLoops: *maxLoops}

	switch canonical {
	case "ve-ad":
		if len(set) == 0 {
			return errors.New("-s <atom> is required (may be repeated)")
		}
		result, err := solver.Solve[bool](problem.VerifyAdmissibleExtension{Assumptions: set}, aba, opts)
		if err != nil {
			return err
		}
		return printYesNo(result)

	case "dc-ad":
		q, err := parseQuery(*query)
		if err != nil {
			return err
		}
		result, err := solver.Solve[bool](problem.DecideCredulousAdmissibility{Element: q}, aba, opts)
		if err != nil {
			return err
		}
		return printYesNo(result)

	case "ee-ad":
		result, err := solver.MultishotSolve[[][]abamodel.Atom](&problem.EnumerateAdmissibleExtensions{}, aba, opts)
		if err != nil {
			return err
		}
		return printExtensions(result)

	case "se-ad":
		result, err := solver.Solve[[]abamodel.Atom](problem.SampleAdmissibleExtension{}, aba, opts)
		if err != nil {
			return err
		}
		return printExtensions([][]abamodel.Atom{result})

	case "ee-co":
		result, err := solver.MultishotSolve[[][]abamodel.Atom](&problem.EnumerateCompleteExtensions{}, aba, opts)
		if err != nil {
			return err
		}
		return printExtensions(result)

	case "dc-co":
		q, err := parseQuery(*query)
		if err != nil {
			return err
		}
		result, err := solver.Solve[bool](problem.DecideCredulousComplete{Element: q}, aba, opts)
		if err != nil {
			return err
		}
		return printYesNo(result)
	}
	return fmt.Errorf("unhandled subcommand %q", canonical)
}

func loadAba(path string) (*abamodel.Aba, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening aba file: %w", err)
	}
	defer f.Close()
	aba, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing aba file: %w", err)
	}
	return aba, nil
}

func parseQuery(raw string) (abamodel.Atom, error) {
	if raw == "" {
		return 0, errors.New("-a <atom> is required")
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid atom %q: %w", raw, err)
	}
	return abamodel.Atom(n), nil
}

func printYesNo(ok bool) error {
	return writeLine(yesNo(ok))
}

// printExtensions prints one line per extension: "w" followed by the
// space-separated, sorted atoms (spec §6.2's extension-output format; the
// empty extension prints "w" alone).
func printExtensions(extensions [][]abamodel.Atom) error {
	for _, ext := range extensions {
		sorted := append([]abamodel.Atom(nil), ext...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		var b strings.Builder
		b.WriteString("w")
		for _, a := range sorted {
			b.WriteString(" ")
			b.WriteString(a.String())
		}
		if err := writeLine(b.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(s string) error {
	_, err := fmt.Fprintln(os.Stdout, s)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return errBrokenPipe
		}
		return err
	}
	return nil
}

// atomListFlag collects repeated -s <atom> flags into a slice, the
// pattern a Go CLI reaches for in place of clap's Vec<u32>.
type atomListFlag []abamodel.Atom

func (a *atomListFlag) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, len(*a))
	for i, atom := range *a {
		parts[i] = atom.String()
	}
	return strings.Join(parts, ",")
}

func (a *atomListFlag) Set(value string) error {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid atom %q: %w", value, err)
	}
	*a = append(*a, abamodel.Atom(n))
	return nil
}
