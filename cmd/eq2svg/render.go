package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	eq2svg "github.com/alnah/go-eq2svg"
	"github.com/alnah/go-eq2svg/internal/config"
)

// ErrNoInput is returned when neither a positional argument nor the config
// provides an input file.
var ErrNoInput = errors.New("no input specified")

// Batcher abstracts the render service for testability.
type Batcher interface {
	ParseFile(path string) ([]eq2svg.Equation, error)
	RenderAll(ctx context.Context, equations []eq2svg.Equation, settings eq2svg.RenderSettings, progress eq2svg.ProgressFunc) error
}

// Compile-time interface implementation check.
var _ Batcher = (*eq2svg.Service)(nil)

// runRenderCmd parses flags for the render command and maps errors to an
// exit code.
func runRenderCmd(args []string, env *Environment) int {
	var flags renderFlags
	fs := newRenderFlagSet(&flags)
	fs.SetOutput(env.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printRenderUsage(env.Stdout)
			return ExitSuccess
		}
		return ExitUsage
	}

	if err := runRender(fs.Args(), &flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runRender orchestrates one render invocation: config, parse, table,
// confirmation, then the sequential batch (or the watch loop).
func runRender(positional []string, flags *renderFlags, env *Environment) error {
	if flags.verbose {
		env.Logger.SetLevel(log.DebugLevel)
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)

	input := cfg.Input.DefaultPath
	if len(positional) > 0 {
		input = positional[0]
	}
	if input == "" {
		return ErrNoInput
	}
	env.Logger.Debug("resolved input", "path", input, "format", eq2svg.Detect(input))

	svc := env.NewService(
		eq2svg.WithCompiler(cfg.Tools.Compiler),
		eq2svg.WithConverter(cfg.Tools.Converter),
	)
	settings := eq2svg.RenderSettings{
		OutputDir:           cfg.Output.Dir,
		Color:               cfg.Render.Color,
		DeleteIntermediates: cfg.Render.DeleteIntermediates,
	}

	equations, err := svc.ParseFile(input)
	if err != nil {
		return err
	}
	env.Logger.Debug("parsed input", "equations", len(equations))

	if len(equations) == 0 && !flags.watch {
		fmt.Fprintln(env.Stdout, "No equations found.")
		return nil
	}

	if !flags.quiet && len(equations) > 0 {
		fmt.Fprintln(env.Stdout, renderTable(equations))
	}

	// Watch mode is unattended; it implies --yes.
	if !flags.yes && !flags.watch {
		if !askConfirmation(env.Stdin, env.Stdout, "Render active equations?") {
			return nil
		}
	}

	renderBatch := func(ctx context.Context, batch []eq2svg.Equation) error {
		if err := svc.RenderAll(ctx, batch, settings, progressFunc(flags.quiet, env)); err != nil {
			return err
		}
		if cfg.Gallery.Enabled && hasActive(batch) {
			if err := eq2svg.WriteGallery(settings.OutputDir, batch); err != nil {
				return err
			}
		}
		if !flags.quiet {
			fmt.Fprintln(env.Stdout, styleSuccess.Render(fmt.Sprintf("Rendered to %s", settings.OutputDir)))
		}
		return nil
	}

	if flags.watch {
		return watchAndRender(input, svc, renderBatch, equations, env)
	}
	return renderBatch(context.Background(), equations)
}

// progressFunc reports per-equation progress on stdout unless quiet.
func progressFunc(quiet bool, env *Environment) eq2svg.ProgressFunc {
	if quiet {
		return nil
	}
	return func(index, total int, name string) {
		counter := styleDim.Render(fmt.Sprintf("[%d/%d]", index, total))
		fmt.Fprintf(env.Stdout, "%s %s\n", counter, name)
	}
}

func hasActive(equations []eq2svg.Equation) bool {
	for _, eq := range equations {
		if eq.Active {
			return true
		}
	}
	return false
}
