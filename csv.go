package eq2svg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Minimum fields per CSV data row: active, body, name.
const minCSVFields = 3

// ParseCSVFile reads a CSV equation listing into equations.
//
// The first line is skipped unconditionally as a header; it is never
// validated. Rows are split on plain commas with no quoting support, so a
// body containing a literal comma shifts into the name field. Rows with
// fewer than three fields are skipped silently.
func ParseCSVFile(path string) ([]Equation, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	equations, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return equations, nil
}

// parseCSV scans newline-delimited rows from r. The duplicate-name counter
// is local to this call; CSV and Markdown parses never share counts.
func parseCSV(r io.Reader) ([]Equation, error) {
	var equations []Equation
	counts := make(nameCounter)

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) < minCSVFields {
			continue
		}
		active := strings.EqualFold(strings.TrimSpace(parts[0]), "yes")
		body := strings.TrimSpace(parts[1])
		name := counts.next(strings.TrimSpace(parts[2]))
		equations = append(equations, NewEquation(active, name, body))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return equations, nil
}
