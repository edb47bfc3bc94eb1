// Command aba2sat decides and enumerates ABA reasoning problems over the
// admissible and complete semantics, reducing each to a run of an
// incremental SAT solver (spec §6.2). Grounded on go-tony/cmd/o's
// cmd/<tool>/main.go + flat command-file layout, adapted from the
// teacher's scott-cotton/cli dependency to the standard library's flag
// package (see /root/module/DESIGN.md for why).
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errBrokenPipe) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
