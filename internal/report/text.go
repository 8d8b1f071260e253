package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/calc/internal/taxonomy"
)

// WriteText writes a report as human-readable styled text to the
// writer. A single calculation is printed as one "a op b = r" line;
// several are printed as a table followed by a summary line. Output
// uses lipgloss for color when the output is a TTY and degrades
// gracefully for pipes and CI.
func WriteText(w io.Writer, rpt *taxonomy.Report) error {
	s := DefaultStyles()

	var calcs []taxonomy.Calculation
	if rpt != nil {
		calcs = rpt.Calculations
	}

	switch len(calcs) {
	case 0:
		_, err := fmt.Fprintln(w, s.Muted.Render("No calculations."))
		return err
	case 1:
		_, err := fmt.Fprintln(w, FormatLine(calcs[0], s))
		return err
	}

	// Budget: 80 cols total, 76 for the table to leave room for an indent.
	const maxExpr = 30
	const maxOutcome = 30
	rows := make([][]string, 0, len(calcs))
	for _, c := range calcs {
		outcome := c.Result
		status := "OK"
		if c.Failed() {
			outcome = c.Error
			status = string(c.ErrorKind)
		}
		rows = append(rows, []string{
			truncate(c.Expression, maxExpr),
			truncate(outcome, maxOutcome),
			status,
		})
	}

	t := table.New().
		Width(76).
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 2 && row >= 0 && row < len(calcs) {
				return s.StatusStyle(calcs[row].ErrorKind).PaddingRight(1)
			}
			return s.TableCell
		}).
		Headers("EXPRESSION", "RESULT", "STATUS").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}

	failed := rpt.Failures()
	_, err := fmt.Fprintf(w, "\n%s\n", s.Header.Render(fmt.Sprintf(
		"%d calculation(s), %d failed", len(calcs), failed)))
	return err
}

// FormatLine renders one calculation as "a op b = r", or
// "a op b: error" when it failed.
func FormatLine(c taxonomy.Calculation, s Styles) string {
	lhs := s.Expression.Render(c.Expression)
	if c.Failed() {
		return fmt.Sprintf("%s: %s", lhs, s.Fail.Render("error: "+c.Error))
	}
	return fmt.Sprintf("%s = %s", lhs, s.Result.Render(c.Result))
}

func truncate(text string, limit int) string {
	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	return string(r[:limit-3]) + "..."
}
