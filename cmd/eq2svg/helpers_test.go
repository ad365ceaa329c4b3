package main

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	eq2svg "github.com/alnah/go-eq2svg"
)

// testEnv returns an Environment wired to buffers, plus the buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    time.Now,
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, log.WarnLevel),
		NewService: func(opts ...eq2svg.Option) Batcher {
			return eq2svg.NewService(opts...)
		},
	}
	return env, stdout, stderr
}

// fakeBatcher implements Batcher without touching the filesystem or
// spawning processes.
type fakeBatcher struct {
	equations []eq2svg.Equation
	parseErr  error
	renderErr error

	parsedPaths []string
	rendered    [][]eq2svg.Equation
	settings    eq2svg.RenderSettings
}

func (f *fakeBatcher) ParseFile(path string) ([]eq2svg.Equation, error) {
	f.parsedPaths = append(f.parsedPaths, path)
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	return f.equations, nil
}

func (f *fakeBatcher) RenderAll(_ context.Context, equations []eq2svg.Equation, settings eq2svg.RenderSettings, progress eq2svg.ProgressFunc) error {
	f.rendered = append(f.rendered, equations)
	f.settings = settings
	if f.renderErr != nil {
		return f.renderErr
	}
	if progress != nil {
		var active []eq2svg.Equation
		for _, eq := range equations {
			if eq.Active {
				active = append(active, eq)
			}
		}
		for i, eq := range active {
			progress(i+1, len(active), eq.Name)
		}
	}
	return nil
}

// withFake swaps the env's service factory for a fakeBatcher.
func withFake(env *Environment, fake *fakeBatcher) {
	env.NewService = func(...eq2svg.Option) Batcher { return fake }
}
