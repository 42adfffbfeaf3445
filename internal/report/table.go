package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cemsbr/tagcash/internal/model"
)

const (
	colAmount  = 1
	colBalance = 2
)

var (
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	rightStyle = cellStyle.Align(lipgloss.Right)
)

// Table draws each list as a bordered table with its title above.
type Table struct{}

// Render implements Renderer.
func (*Table) Render(w io.Writer, title string, records []model.Record) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = row(r)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == colAmount || col == colBalance {
				return rightStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintf(w, "%s\n%s\n", title, t.String()); err != nil {
		return fmt.Errorf("writing table %s: %w", title, err)
	}
	return nil
}
