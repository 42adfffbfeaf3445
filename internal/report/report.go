package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/cemsbr/tagcash/internal/model"
)

// AllTagsTitle is the title of the merged view.
const AllTagsTitle = "All Tags"

// Renderer writes one titled list of balanced records.
type Renderer interface {
	Render(w io.Writer, title string, records []model.Record) error
}

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatCSV   Format = "csv"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatTable, FormatPlain, FormatCSV}

// New returns a fresh renderer for format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatTable, "":
		return &Table{}, nil
	case FormatPlain:
		return &Plain{}, nil
	case FormatCSV:
		return &CSV{}, nil
	default:
		names := make([]string, len(Formats))
		for i, f := range Formats {
			names[i] = string(f)
		}
		return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(names, ", "))
	}
}

// ParseFormat returns the renderer named by s, case-insensitively.
func ParseFormat(s string) (Renderer, error) {
	return New(Format(strings.ToLower(strings.TrimSpace(s))))
}

var amountFormatter = money.NewFormatter(2, ".", ",", "", "1")

// FormatAmount renders d with two decimals and comma thousands separators,
// e.g. -1234567.5 -> "-1,234,567.50".
func FormatAmount(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2)
	// Abs keeps math.MinInt64 away from the formatter, which negates it.
	if cents.Abs().BigInt().IsInt64() {
		return amountFormatter.Format(cents.IntPart())
	}
	return groupThousands(d.StringFixed(2))
}

// groupThousands adds "," separators to the integer part of a fixed-point
// string such as "-1234567.50". It covers amounts whose cents overflow int64.
func groupThousands(fixed string) string {
	body, negative := strings.CutPrefix(fixed, "-")
	whole, frac, _ := strings.Cut(body, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	if frac != "" {
		b.WriteString("." + frac)
	}
	return b.String()
}

// formatBalance renders an unset balance as an empty cell.
func formatBalance(b decimal.NullDecimal) string {
	if !b.Valid {
		return ""
	}
	return FormatAmount(b.Decimal)
}

var header = []string{"Date", "Amount", "Balance", "Description"}

func row(r model.Record) []string {
	return []string{r.Date, FormatAmount(r.Amount), formatBalance(r.Balance), r.Description}
}
