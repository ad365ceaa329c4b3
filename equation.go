package eq2svg

import (
	"fmt"
	"regexp"
)

// DefaultName is used when a sanitized name comes out empty or when a
// Markdown block carries no name directive.
const DefaultName = "default_equation"

// invalidNameChars matches everything that may not appear in an output
// file name.
var invalidNameChars = regexp.MustCompile(`[^A-Za-z0-9_.]`)

// Equation is a single entry from a parsed equation file.
type Equation struct {
	Active bool   // whether this equation is rendered
	Name   string // filesystem-safe name for output files
	Body   string // LaTeX body of the equation
}

// NewEquation constructs an Equation, sanitizing the name.
func NewEquation(active bool, name, body string) Equation {
	return Equation{
		Active: active,
		Name:   Sanitize(name),
		Body:   body,
	}
}

// Sanitize normalizes a user-supplied name into a safe file name.
// Every character outside [A-Za-z0-9_.] is replaced with an underscore;
// an empty result falls back to DefaultName. Sanitize is idempotent.
func Sanitize(raw string) string {
	s := invalidNameChars.ReplaceAllString(raw, "_")
	if s == "" {
		return DefaultName
	}
	return s
}

// nameCounter disambiguates repeated names within a single parse pass.
// The counter is keyed on the name as seen before sanitization and must
// not outlive the parse call that created it.
type nameCounter map[string]int

// next returns base unchanged on first sight, then base_1, base_2, and
// so on for subsequent occurrences.
func (c nameCounter) next(base string) string {
	n := c[base]
	c[base]++
	if n > 0 {
		return fmt.Sprintf("%s_%d", base, n)
	}
	return base
}
