package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	eq2svg "github.com/alnah/go-eq2svg"
)

// Color palette.
var (
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorDim   = lipgloss.Color("240") // muted text
	colorCyan  = lipgloss.Color("36")  // headers
)

// Styles shared across commands.
var (
	styleSuccess     = lipgloss.NewStyle().Foreground(colorGreen)
	styleError       = lipgloss.NewStyle().Foreground(colorRed)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleTableHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleTableCell   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable formats the parsed equations as an Active/Name/Equation
// table, mirroring what will be rendered.
func renderTable(equations []eq2svg.Equation) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			return styleTableCell
		}).
		Headers("ACTIVE", "NAME", "EQUATION")

	for _, eq := range equations {
		active := "No"
		if eq.Active {
			active = "Yes"
		}
		t.Row(active, eq.Name, eq.Body)
	}
	return t.Render()
}

// errorLine formats a styled error line.
func errorLine(msg string) string {
	return styleError.Render(fmt.Sprintf("✗ %s", msg))
}

// successLine formats a styled success line.
func successLine(msg string) string {
	return styleSuccess.Render(fmt.Sprintf("✓ %s", msg))
}
