package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eq2svg <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render equations from a CSV or Markdown file to SVG")
	fmt.Fprintln(w, "  doctor     Check that the external tools are available")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running 'eq2svg <input-file>' is shorthand for 'eq2svg render <input-file>'.")
	fmt.Fprintln(w, "Run 'eq2svg help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eq2svg render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the active equations in a CSV or Markdown listing to SVG files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Equation file, .csv or .md/.markdown")
	fmt.Fprintln(w, "           (optional if the config sets input.defaultPath)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>           Output directory (default ./output)")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "      --color <hex>            Equation color (default #000000)")
	fmt.Fprintln(w, "  -d, --delete-intermediates   Remove .tex and .pdf after SVG conversion")
	fmt.Fprintln(w, "      --gallery                Write gallery.html next to the SVGs")
	fmt.Fprintln(w, "  -y, --yes                    Skip the confirmation prompt")
	fmt.Fprintln(w, "  -w, --watch                  Re-render when the input file changes")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show debug logging")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: eq2svg doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that tectonic and pdftocairo are on PATH and that the")
	fmt.Fprintln(w, "temp directory is writable. Exits 1 if anything is broken.")
}

// runHelpCmd shows help for a specific command, or the general usage.
func runHelpCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
	return ExitSuccess
}
