package main

import (
	"errors"
	"os"

	eq2svg "github.com/alnah/go-eq2svg"
	"github.com/alnah/go-eq2svg/internal/config"
)

// Exit codes for the eq2svg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or unsupported format
	ExitIO      = 3 // File not found, permission denied, write failures
	ExitTool    = 4 // tectonic or pdftocairo failed or is missing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, eq2svg.ErrCompileFailed) ||
		errors.Is(err, eq2svg.ErrSVGConversion) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, eq2svg.ErrReadInput) ||
		errors.Is(err, eq2svg.ErrCreateOutputDir) ||
		errors.Is(err, eq2svg.ErrWriteTeX) ||
		errors.Is(err, eq2svg.ErrGalleryRender) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, eq2svg.ErrUnsupportedFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
