package model

import "github.com/shopspring/decimal"

// Record is one tag's view of one ledger line.
type Record struct {
	Tag         string              // sign marker stripped, original case kept
	Date        string              // "YYYY-MM-DD", compared lexicographically
	Amount      decimal.Decimal     // already negated for "-tag"
	Description string
	Balance     decimal.NullDecimal // invalid until the group is balanced
}

// HasBalance reports whether the running balance has been computed.
func (r Record) HasBalance() bool {
	return r.Balance.Valid
}
