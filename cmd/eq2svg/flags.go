package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-eq2svg/internal/config"
)

// renderFlags holds all flags for the render command.
type renderFlags struct {
	config              string
	output              string
	color               string
	deleteIntermediates bool
	gallery             bool
	yes                 bool
	watch               bool
	quiet               bool
	verbose             bool
}

// newRenderFlagSet builds the FlagSet for the render command.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"./output\")")
	fs.StringVar(&f.color, "color", "", "equation color as hex (default \"#000000\")")
	fs.BoolVarP(&f.deleteIntermediates, "delete-intermediates", "d", false, "remove .tex and .pdf after SVG conversion")
	fs.BoolVar(&f.gallery, "gallery", false, "write an HTML gallery next to the SVGs")
	fs.BoolVarP(&f.yes, "yes", "y", false, "skip the confirmation prompt")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-render whenever the input file changes")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
	return fs
}

// mergeFlags overlays explicitly set CLI flags onto the config (CLI wins).
func mergeFlags(f *renderFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if f.color != "" {
		cfg.Render.Color = f.color
	}
	if f.deleteIntermediates {
		cfg.Render.DeleteIntermediates = true
	}
	if f.gallery {
		cfg.Gallery.Enabled = true
	}
}
