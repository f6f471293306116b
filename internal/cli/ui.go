package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, active
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)

	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleActive   = lipgloss.NewStyle().Foreground(colorGreen)
	styleInactive = lipgloss.NewStyle().Foreground(colorDim)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess  = "✓"
	iconInfo     = "›"
	iconError    = "✗"
	iconArrow    = "→"
	iconActive   = "●"
	iconInactive = "○"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints scene statistics on a single line.
func printStats(w io.Writer, views, constraints, active int) {
	parts := []string{
		fmt.Sprintf("%d views", views),
		fmt.Sprintf("%d constraints", constraints),
		fmt.Sprintf("%d active", active),
	}
	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Fprintln(w, line)
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline(w io.Writer) {
	fmt.Fprintln(w)
}

// =============================================================================
// Constraint Table
// =============================================================================

var constraintHeaders = []string{"", "View", "Attribute", "Rel", "Target", "×", "+", "Priority"}

// constraintRow renders one constraint as table cells. cursor is the
// leading marker column.
func constraintRow(cursor string, m *constraint.Mutable) []string {
	target := "—"
	if item := m.Item(); item != nil {
		target = item.String() + "." + m.Attribute().String()
	}
	mark := iconInactive
	if m.IsActive() {
		mark = iconActive
	}
	return []string{
		cursor + mark,
		m.FirstItem().String(),
		m.FirstAttribute().String(),
		m.Relation().Symbol(),
		target,
		strconv.FormatFloat(m.Multiplier(), 'g', -1, 64),
		strconv.FormatFloat(m.Constant(), 'g', -1, 64),
		priorityLabel(m.Priority()),
	}
}

func priorityLabel(p toolkit.Priority) string {
	n := strconv.FormatFloat(float64(p), 'g', -1, 32)
	if s := p.String(); s != n {
		return s + " (" + n + ")"
	}
	return n
}

// constraintTable renders constraints as a bordered table. Active rows are
// green, inactive rows dim, and the row at highlight (if any) is bold.
func constraintTable(cs []*constraint.Mutable, highlight int, cursor func(i int) string) string {
	rows := make([][]string, len(cs))
	for i, m := range cs {
		rows[i] = constraintRow(cursor(i), m)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(constraintHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row < 0 || row >= len(cs) {
				return lipgloss.NewStyle()
			}
			style := styleInactive
			if cs[row].IsActive() {
				style = styleActive
			}
			if row == highlight {
				style = style.Bold(true)
			}
			return style.Padding(0, 1)
		}).
		Render()
}

func noCursor(int) string { return "" }
