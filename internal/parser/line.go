package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cemsbr/tagcash/internal/model"
)

// tagPattern is one tag: optional sign, then word characters or hyphens
// containing at least one word character.
const tagPattern = `-?[-\p{L}\p{N}_]*[\p{L}\p{N}_][-\p{L}\p{N}_]*`

var lineRe = regexp.MustCompile(fmt.Sprintf(
	`^([0-9]{4}-[0-9]{2}-[0-9]{2})\s+(-?[0-9.,]+)\s+(.+?)\s+(%s(?:,%s)*)$`,
	tagPattern, tagPattern,
))

// Fields is the structured result of matching a ledger line.
type Fields struct {
	Date        string
	Amount      string // raw token, see ParseAmount
	Description string
	Tags        []string // as written, sign marker included
}

// Match splits a ledger line into its fields without interpreting them.
func Match(line string) (Fields, error) {
	line = strings.TrimRight(line, "\r\n")
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Fields{}, &LineFormatError{Line: line}
	}
	return Fields{
		Date:        m[1],
		Amount:      m[2],
		Description: strings.TrimSpace(m[3]),
		Tags:        strings.Split(m[4], ","),
	}, nil
}

// ParseLine converts one ledger line into a record per wanted tag. A tag
// written as "-name" negates the amount for that record.
func ParseLine(line string, wanted TagSet) ([]model.Record, error) {
	f, err := Match(line)
	if err != nil {
		return nil, err
	}

	amount, err := ParseAmount(f.Amount)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for _, tag := range f.Tags {
		name, negative := SplitTag(tag)
		if !wanted.Wants(name) {
			continue
		}
		a := amount
		if negative {
			a = a.Neg()
		}
		records = append(records, model.Record{
			Tag:         name,
			Date:        f.Date,
			Amount:      a,
			Description: f.Description,
		})
	}
	return records, nil
}
