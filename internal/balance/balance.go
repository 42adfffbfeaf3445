package balance

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cemsbr/tagcash/internal/model"
)

// Update sorts records by date, keeping line order for equal dates, and sets
// each record's running balance starting from zero.
func Update(records []model.Record) {
	slices.SortStableFunc(records, func(a, b model.Record) int {
		return strings.Compare(a.Date, b.Date)
	})

	running := decimal.Zero
	for i := range records {
		running = running.Add(records[i].Amount)
		records[i].Balance = decimal.NewNullDecimal(running)
	}
}

// Merge returns copies of every record in groups, tag by tag in first-seen
// order, with balances cleared. The copies can be balanced without touching
// the per-tag balances.
func Merge(groups *model.Groups) []model.Record {
	merged := make([]model.Record, 0, groups.Count())
	for _, tag := range groups.Tags() {
		for _, r := range groups.Records(tag) {
			r.Balance = decimal.NullDecimal{}
			merged = append(merged, r)
		}
	}
	return merged
}
