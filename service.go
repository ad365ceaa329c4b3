package eq2svg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ProgressFunc observes per-equation progress during a batch render.
// index is 1-based over the active subset; name is the equation about to
// be rendered. Pass nil to skip progress reporting.
type ProgressFunc func(index, total int, name string)

// Service ties parsing and rendering together for one batch at a time.
type Service struct {
	renderer *Renderer
}

// NewService creates a Service. Options are forwarded to the underlying
// Renderer.
func NewService(opts ...Option) *Service {
	return &Service{renderer: NewRenderer(opts...)}
}

// ParseFile detects the format of path and parses it into equations.
// Unknown extensions return ErrUnsupportedFormat; unreadable files return
// ErrReadInput. Records are created fresh on every call.
func (s *Service) ParseFile(path string) ([]Equation, error) {
	switch Detect(path) {
	case FiletypeCSV:
		return ParseCSVFile(path)
	case FiletypeMarkdown:
		content, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return ParseMarkdown(string(content)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// RenderAll renders every active equation strictly sequentially, in list
// order, stopping at the first failure. An empty active set is an
// immediate success with no process spawns.
//
// The context is consulted only between equations: cancellation lets the
// current equation finish and stops before the next one.
func (s *Service) RenderAll(ctx context.Context, equations []Equation, settings RenderSettings, progress ProgressFunc) error {
	var active []Equation
	for _, eq := range equations {
		if eq.Active {
			active = append(active, eq)
		}
	}

	for i, eq := range active {
		if err := ctx.Err(); err != nil {
			return err
		}
		if progress != nil {
			progress(i+1, len(active), eq.Name)
		}
		if err := s.renderer.Render(eq, settings); err != nil {
			return fmt.Errorf("rendering %s: %w", eq.Name, err)
		}
	}
	return nil
}
