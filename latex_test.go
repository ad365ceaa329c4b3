package eq2svg

import (
	"strings"
	"testing"
)

func TestGenerateLaTeX(t *testing.T) {
	t.Parallel()

	doc := generateLaTeX("x = y + z", "#1A2B3C")

	wantParts := []string{
		`\documentclass[border=1pt]{standalone}`,
		`\usepackage{amsmath}`,
		`\usepackage{gfsneohellenicot}`,
		`\definecolor{equationcolor}{HTML}{1A2B3C}`,
		`\textcolor{equationcolor}{$x = y + z$}`,
		`\dimen0=12mm`,
		`\ifdim\dp0<5mm \dp0=5mm \fi`,
	}
	for _, part := range wantParts {
		if !strings.Contains(doc, part) {
			t.Errorf("document missing %q:\n%s", part, doc)
		}
	}
}

func TestGenerateLaTeXColorHashOptional(t *testing.T) {
	t.Parallel()

	withHash := generateLaTeX("a", "#FF0000")
	withoutHash := generateLaTeX("a", "FF0000")

	if withHash != withoutHash {
		t.Error("documents differ depending on leading '#' in color")
	}
}
