package eq2svg

import (
	"regexp"
	"strings"
)

// equationBlock matches one equation entry: an optional %%yes%%/%%no%%
// directive, a $$...$$ math block (non-greedy, may span lines), and an
// optional trailing %%name%% directive. Submatches:
//
//	1: leading directive including delimiters
//	2: "yes" or "no"
//	3: math body
//	4: trailing directive including delimiters
//	5: name
//
// Matching is first-match in source order; overlapping or malformed
// directive/block sequences get no special handling.
var equationBlock = regexp.MustCompile(`(?s)(%%(yes|no)?%%)?[\n\r]*\$\$[\n\r]*(.*?)\$\$[\n\r]*(%%(.*?)%%)?`)

// ParseMarkdown scans free-form text for equation blocks. It never fails;
// text without blocks yields no equations.
//
// An absent leading directive means active. An absent trailing directive
// names the equation DefaultName. Duplicate names are counted across the
// whole document, keyed on the candidate name before sanitization.
func ParseMarkdown(content string) []Equation {
	var equations []Equation
	counts := make(nameCounter)

	for _, m := range equationBlock.FindAllStringSubmatch(content, -1) {
		active := m[2] != "no"
		body := strings.TrimSpace(m[3])
		candidate := DefaultName
		if m[4] != "" {
			candidate = m[5]
		}
		name := counts.next(candidate)
		equations = append(equations, NewEquation(active, name, body))
	}
	return equations
}
