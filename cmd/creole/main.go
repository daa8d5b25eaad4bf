package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// maxWorkers caps auto-sized worker counts; parsing is CPU-bound and more
// workers than cores buy nothing.
const maxWorkers = 16

func main() {
	flags, inputs, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(ExitUsage)
	}

	if flags.showVersion {
		fmt.Println("creole", Version)
		return
	}

	if err := validateWorkers(flags.workers); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	workers := resolveWorkerCount(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Workers: %d\n", workers)
	}

	if err := run(flags, inputs, workers, DefaultEnv()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// resolveWorkerCount determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted for containers by automaxprocs).
func resolveWorkerCount(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0)
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
