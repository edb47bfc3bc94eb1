// Command count-loops loads an ABA framework and prints the number of
// loops spec §4.C4's discovery pass finds, as a sanity tool independent
// of the solving pipeline (spec §6.2). Grounded on
// original_source/src/bin/count-loops.rs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/aba2sat/aba2sat/internal/parser"
	"github.com/aba2sat/aba2sat/internal/prepare"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("count-loops", flag.ContinueOnError)
	file := fs.String("f", "", "input aba file")
	maxLoops := fs.Int("l", 0, "optional cap on loop discovery (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-f <path> is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("opening aba file: %w", err)
	}
	defer f.Close()

	aba, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing aba file: %w", err)
	}

	prepared := prepare.Prepare(aba, prepare.Options{MaxLoops: *maxLoops})
	fmt.Println(len(prepared.Loops()))
	return nil
}
