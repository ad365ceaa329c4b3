package eq2svg

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default external tool names, resolved against PATH.
const (
	DefaultCompiler  = "tectonic"
	DefaultConverter = "pdftocairo"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// RenderSettings configures one render pass.
type RenderSettings struct {
	OutputDir           string // directory for .tex/.pdf/.svg artifacts
	Color               string // hex color, with or without leading '#'
	DeleteIntermediates bool   // remove .tex and .pdf after SVG conversion
}

// DefaultRenderSettings returns settings matching the CLI defaults.
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		OutputDir: "./output",
		Color:     "#000000",
	}
}

// Renderer drives the external typesetting pipeline for single equations.
type Renderer struct {
	runner    CommandRunner
	compiler  string
	converter string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRunner replaces the process runner (used by tests).
func WithRunner(r CommandRunner) Option {
	return func(rd *Renderer) { rd.runner = r }
}

// WithCompiler overrides the LaTeX compiler binary name.
func WithCompiler(name string) Option {
	return func(rd *Renderer) {
		if name != "" {
			rd.compiler = name
		}
	}
}

// WithConverter overrides the PDF-to-SVG converter binary name.
func WithConverter(name string) Option {
	return func(rd *Renderer) {
		if name != "" {
			rd.converter = name
		}
	}
}

// NewRenderer creates a Renderer with default tools and a real runner.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		runner:    ExecRunner{},
		compiler:  DefaultCompiler,
		converter: DefaultConverter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces {name}.svg for one equation. Inactive equations are a
// no-op success with no filesystem writes. Each step blocks until done;
// there is no timeout on the external tools.
func (r *Renderer) Render(eq Equation, settings RenderSettings) error {
	if !eq.Active {
		return nil
	}

	if err := os.MkdirAll(settings.OutputDir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	texPath := filepath.Join(settings.OutputDir, eq.Name+".tex")
	doc := generateLaTeX(eq.Body, settings.Color)
	if err := os.WriteFile(texPath, []byte(doc), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteTeX, err)
	}

	if err := r.runner.Run(r.compiler, texPath, "--outdir", settings.OutputDir); err != nil {
		return fmt.Errorf("%w: %v", ErrCompileFailed, err)
	}

	if err := r.convertPDFToSVG(eq.Name, settings.OutputDir); err != nil {
		return err
	}

	if settings.DeleteIntermediates {
		r.cleanupIntermediates(eq.Name, settings.OutputDir)
	}
	return nil
}

// convertPDFToSVG turns the compiled PDF into an SVG next to it.
func (r *Renderer) convertPDFToSVG(name, outputDir string) error {
	pdf := filepath.Join(outputDir, name+".pdf")
	svg := filepath.Join(outputDir, name+".svg")
	if err := r.runner.Run(r.converter, "-svg", pdf, svg); err != nil {
		return fmt.Errorf("%w: %v", ErrSVGConversion, err)
	}
	return nil
}

// cleanupIntermediates removes the .tex and .pdf for one equation.
// Removal is best-effort; failures are ignored.
func (r *Renderer) cleanupIntermediates(name, outputDir string) {
	_ = os.Remove(filepath.Join(outputDir, name+".tex"))
	_ = os.Remove(filepath.Join(outputDir, name+".pdf"))
}
