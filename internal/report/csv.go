package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cemsbr/tagcash/internal/model"
)

// CSVHeader is the header row written before the first record.
const CSVHeader = "title,tag,date,amount,balance,description"

const csvNumFields = 6

// CSV writes machine-readable rows. The header is written once per CSV
// value, so reuse the same value for every list of one output.
type CSV struct {
	wroteHeader bool
}

// Render implements Renderer.
func (c *CSV) Render(w io.Writer, title string, records []model.Record) error {
	cw := csv.NewWriter(w)

	if !c.wroteHeader {
		if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		c.wroteHeader = true
	}

	for i, r := range records {
		if err := cw.Write(MarshalRecord(title, r)); err != nil {
			return fmt.Errorf("writing %s row %d: %w", title, i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a record to a CSV row. Amounts are plain decimals
// with two places.
func MarshalRecord(title string, r model.Record) []string {
	row := make([]string, csvNumFields)
	row[0] = title
	row[1] = r.Tag
	row[2] = r.Date
	row[3] = r.Amount.StringFixed(2)
	if r.Balance.Valid {
		row[4] = r.Balance.Decimal.StringFixed(2)
	}
	row[5] = r.Description
	return row
}
