// Command eq2svg renders LaTeX equations listed in CSV or Markdown files
// to SVG images via tectonic and pdftocairo.
package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to a subcommand and returns the process exit code.
// A bare input path is shorthand for "render <path>".
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "render":
		return runRenderCmd(args[1:], env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "eq2svg %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelpCmd(args[1:], env)
	default:
		if strings.HasPrefix(args[0], "-") {
			printUsage(env.Stderr)
			return ExitUsage
		}
		return runRenderCmd(args, env)
	}
}
