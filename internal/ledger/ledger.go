package ledger

import (
	"errors"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/cemsbr/tagcash/internal/balance"
	"github.com/cemsbr/tagcash/internal/model"
	"github.com/cemsbr/tagcash/internal/parser"
	"github.com/cemsbr/tagcash/internal/source"
)

// ReportFunc receives a line that could not be parsed and the reason.
type ReportFunc func(line source.Line, err error)

// Collect parses lines into records grouped by tag, keeping only wanted
// tags. Unparsable lines are passed to report and skipped. The first input
// error aborts collection and is returned.
func Collect(lines iter.Seq2[source.Line, error], wanted parser.TagSet, report ReportFunc) (*model.Groups, error) {
	groups := model.NewGroups()
	for line, err := range lines {
		if err != nil {
			return nil, err
		}
		if line.Truncated {
			if report != nil {
				report(line, &parser.LineFormatError{Line: excerpt(line.Text)})
			}
			continue
		}
		if strings.TrimSpace(line.Text) == "" {
			continue
		}

		records, err := parser.ParseLine(line.Text, wanted)
		if err != nil {
			if !errors.Is(err, parser.ErrRecoverable) {
				return nil, err
			}
			if report != nil {
				report(line, err)
			}
			continue
		}
		for _, r := range records {
			groups.Add(r)
		}
	}
	return groups, nil
}

// excerptLen is how much of an overlong line is quoted in its report.
const excerptLen = 60

func excerpt(text string) string {
	if len(text) <= excerptLen {
		return text
	}
	cut := excerptLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

// Balance computes running balances for every tag independently.
func Balance(groups *model.Groups) {
	for _, tag := range groups.Tags() {
		balance.Update(groups.Records(tag))
	}
}

// All returns the records of every tag merged into one balanced view.
// Per-tag balances are not affected.
func All(groups *model.Groups) []model.Record {
	merged := balance.Merge(groups)
	balance.Update(merged)
	return merged
}
