// Package diag is the process-wide diagnostic sink: env-var-gated debug
// logging plus the cooperative cancellation flag for loop discovery
// (spec §5). Grounded on go-tony/debug/debug.go's boolEnv-gated flags.
package diag

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

var (
	debugSolve = boolEnv("ABA2SAT_DEBUG_SOLVE")
	debugLoops = boolEnv("ABA2SAT_DEBUG_LOOPS")

	// StopLoopCounting is the process-wide cooperative-cancellation flag
	// of spec §5: an external signal handler may set it to request early
	// termination of cycle enumeration. Reset to false at the start of
	// every Prepare call.
	StopLoopCounting atomic.Bool

	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
)

func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

func logLevel() slog.Level {
	switch os.Getenv("ABA2SAT_LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SolveEnabled reports whether clause/model dumps should be emitted.
func SolveEnabled() bool { return debugSolve }

// LoopsEnabled reports whether loop-discovery tracing should be emitted.
func LoopsEnabled() bool { return debugLoops }

// Warnf logs a warning, always surfaced regardless of debug gating —
// used for the loop-discovery cap warning of spec §4.C4.
func Warnf(msg string, args ...any) {
	log.Warn(msg, args...)
}

// Clauses logs a derived clause list at debug level, gated behind
// ABA2SAT_DEBUG_SOLVE (supplements the Rust original's unconditional
// eprintln! of every derived clause).
func Clauses(label string, clauses any) {
	if !debugSolve {
		return
	}
	log.Debug("derived clauses", "label", label, "clauses", clauses)
}

// Model logs a reconstructed SAT model at debug level, gated behind
// ABA2SAT_DEBUG_SOLVE.
func Model(model any) {
	if !debugSolve {
		return
	}
	log.Debug("solved model", "model", model)
}

// Loopf logs a loop-discovery trace message, gated behind
// ABA2SAT_DEBUG_LOOPS.
func Loopf(msg string, args ...any) {
	if !debugLoops {
		return
	}
	log.Debug(msg, args...)
}
