package eq2svg

import (
	"fmt"
	"strings"
)

// latexTemplate is the fixed document wrapper for a single equation.
// The box trickery enforces a minimum height of 12mm and depth of 5mm so
// short equations do not produce near-empty pages.
const latexTemplate = `\documentclass[border=1pt]{standalone}
\usepackage{amsmath}
\usepackage{xfrac}
\usepackage{gfsneohellenicot}
\usepackage{xcolor}
\definecolor{equationcolor}{HTML}{%s}
\begin{document}
\setbox0\hbox{\Large \textcolor{equationcolor}{$%s$}}
\dimen0=12mm
\ifdim\ht0<\dimen0 \ht0=\dimen0 \fi
\ifdim\dp0<5mm \dp0=5mm \fi
\box0
\end{document}
`

// generateLaTeX produces the typesetting source for one equation body.
// The color is a hex string with or without a leading '#'.
func generateLaTeX(body, color string) string {
	code := strings.TrimPrefix(color, "#")
	return fmt.Sprintf(latexTemplate, code, body)
}
