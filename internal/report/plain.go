package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/cemsbr/tagcash/internal/model"
)

const dateWidth = len("2006-01-02")

// Plain writes each list as whitespace-aligned columns under an underlined
// title.
type Plain struct{}

// Render implements Renderer.
func (*Plain) Render(w io.Writer, title string, records []model.Record) error {
	rows := make([][]string, len(records))
	amountW := runewidth.StringWidth(header[1])
	balanceW := runewidth.StringWidth(header[2])
	descW := runewidth.StringWidth(header[3])
	for i, r := range records {
		rows[i] = row(r)
		amountW = max(amountW, runewidth.StringWidth(rows[i][1]))
		balanceW = max(balanceW, runewidth.StringWidth(rows[i][2]))
		descW = max(descW, runewidth.StringWidth(rows[i][3]))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", runewidth.StringWidth(title)) + "\n")

	line := func(cols []string) {
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			runewidth.FillRight(cols[0], dateWidth),
			runewidth.FillLeft(cols[1], amountW),
			runewidth.FillLeft(cols[2], balanceW),
			cols[3])
	}
	line(header)
	b.WriteString(strings.Repeat("-", dateWidth+2+amountW+2+balanceW+2+descW) + "\n")
	for _, cols := range rows {
		line(cols)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing %s: %w", title, err)
	}
	return nil
}
