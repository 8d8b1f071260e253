package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unbound-force/calc/internal/taxonomy"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers and the summary line.
	Header lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Expression styles the left-hand side of "a op b = r".
	Expression lipgloss.Style

	// Result styles successful results.
	Result lipgloss.Style

	// Fail styles error messages and FAIL indicators.
	Fail lipgloss.Style

	// Pass styles OK indicators.
	Pass lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Expression: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Result:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),

		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// StatusStyle returns the style for a calculation's status cell.
func (s Styles) StatusStyle(kind taxonomy.ErrorKind) lipgloss.Style {
	if kind == taxonomy.KindNone {
		return s.Pass
	}
	return s.Fail
}
