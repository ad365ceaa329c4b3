package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	eq2svg "github.com/alnah/go-eq2svg"
)

// Environment holds injectable dependencies for testability: I/O streams,
// time, logging, and the render service factory.
type Environment struct {
	Now        func() time.Time
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *log.Logger
	NewService func(opts ...eq2svg.Option) Batcher
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: newLogger(os.Stderr, log.WarnLevel),
		NewService: func(opts ...eq2svg.Option) Batcher {
			return eq2svg.NewService(opts...)
		},
	}
}

// newLogger creates a logger with timestamp formatting, writing to w and
// filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}
