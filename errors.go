package eq2svg

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadInput         = errors.New("failed to read input file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrCreateOutputDir   = errors.New("failed to create output directory")
	ErrWriteTeX          = errors.New("failed to write LaTeX source")
	ErrCompileFailed     = errors.New("LaTeX compilation failed")
	ErrSVGConversion     = errors.New("SVG conversion failed")
	ErrGalleryRender     = errors.New("gallery generation failed")
)
