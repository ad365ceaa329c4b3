package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	eq2svg "github.com/alnah/go-eq2svg"
	"github.com/alnah/go-eq2svg/internal/watch"
)

// watchAndRender renders the initial batch, then re-parses and re-renders
// on every change to the input file until interrupted. Render failures are
// logged and the watch continues; only watcher setup errors are fatal.
func watchAndRender(input string, svc Batcher, renderBatch func(context.Context, []eq2svg.Equation) error, initial []eq2svg.Equation, env *Environment) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(initial) > 0 {
		if err := renderBatch(ctx, initial); err != nil {
			env.Logger.Error("render failed", "err", err)
		}
	}

	w := watch.New(watch.WithErrorHandler(func(err error) {
		env.Logger.Error("watch error", "err", err)
	}))

	rerender := func() {
		equations, err := svc.ParseFile(input)
		if err != nil {
			env.Logger.Error("parse failed", "err", err)
			return
		}
		if len(equations) == 0 {
			env.Logger.Warn("no equations found", "path", input)
			return
		}
		if err := renderBatch(ctx, equations); err != nil {
			env.Logger.Error("render failed", "err", err)
		}
	}

	if err := w.Watch(input, rerender); err != nil {
		return fmt.Errorf("watching %s: %w", input, err)
	}
	defer w.Close() //nolint:errcheck // shutdown path

	fmt.Fprintf(env.Stdout, "Watching %s (Ctrl-C to stop)\n", input)
	<-ctx.Done()
	return nil
}
