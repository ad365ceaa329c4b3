// Package eq2svg renders LaTeX equations listed in CSV or Markdown files
// to standalone SVG images using tectonic and pdftocairo.
//
// # Quick Start
//
// Create a service, parse an input file, and render the active equations:
//
//	svc := eq2svg.NewService()
//
//	equations, err := svc.ParseFile("equations.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings := eq2svg.DefaultRenderSettings()
//	if err := svc.RenderAll(ctx, equations, settings, nil); err != nil {
//	    log.Fatal(err)
//	}
//
// # Input Formats
//
// CSV files have a header row (always skipped) followed by rows of at least
// three comma-separated fields: active ("yes"/anything else), equation body,
// name. There is no quoting support; bodies containing literal commas will
// shift into the following fields.
//
// Markdown files contain display-math blocks with optional directives:
//
//	%%yes%%
//	$$x = y + z$$
//	%%example_equation%%
//
// The leading directive toggles rendering (absent means active) and the
// trailing directive names the output files.
//
// # Rendering Pipeline
//
// Each active equation goes through these stages:
//
//  1. A standalone-class LaTeX document embedding the equation is written
//     to {outputDir}/{name}.tex.
//  2. tectonic compiles it to {name}.pdf (output streams discarded).
//  3. pdftocairo converts the PDF to {name}.svg.
//  4. The .tex and .pdf intermediates are optionally deleted.
//
// Rendering is strictly sequential: one equation finishes before the next
// begins. The context is only consulted between equations, so cancellation
// lets the in-flight equation complete.
//
// # Tool Requirements
//
// tectonic and pdftocairo must be on PATH (or overridden via WithCompiler
// and WithConverter). Absence surfaces as a render-time failure; use the
// eq2svg CLI's doctor command to check the environment up front.
package eq2svg
