package ledger

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemsbr/tagcash/internal/parser"
	"github.com/cemsbr/tagcash/internal/source"
)

type reported struct {
	line source.Line
	err  error
}

func stdinLines(text string) iter.Seq2[source.Line, error] {
	return source.Lines(nil, strings.NewReader(text))
}

func TestCollectGroupsByTag(t *testing.T) {
	input := strings.Join([]string{
		"2018-01-14  12  Lunch  food,work",
		"2018-01-13  -30  Dinner  food",
		"",
		"2018-01-15  1.000,00  Salary  -work",
	}, "\n")

	var errs []reported
	groups, err := Collect(stdinLines(input), nil, func(l source.Line, err error) {
		errs = append(errs, reported{l, err})
	})
	require.NoError(t, err)
	assert.Empty(t, errs, "blank lines are not reported")

	assert.Equal(t, []string{"food", "work"}, groups.Tags())
	require.Len(t, groups.Records("food"), 2)
	require.Len(t, groups.Records("work"), 2)
	assert.Equal(t, "-1000", groups.Records("work")[1].Amount.String())
}

func TestCollectReportsAndContinues(t *testing.T) {
	input := strings.Join([]string{
		"2018-01-14  12  Lunch  food",
		"this line is broken",
		"2018-01-15  1,000  Bad amount  food",
		"2018-01-16  3  Snack  food",
	}, "\n")

	var errs []reported
	groups, err := Collect(stdinLines(input), nil, func(l source.Line, err error) {
		errs = append(errs, reported{l, err})
	})
	require.NoError(t, err)

	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].line.Number)
	var lerr *parser.LineFormatError
	assert.True(t, errors.As(errs[0].err, &lerr))
	assert.Equal(t, 3, errs[1].line.Number)
	var aerr *parser.AmountParseError
	assert.True(t, errors.As(errs[1].err, &aerr))

	assert.Len(t, groups.Records("food"), 2, "valid lines after a bad one still parse")
}

func TestCollectNilReport(t *testing.T) {
	groups, err := Collect(stdinLines("junk\n2018-01-14  12  Lunch  food\n"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, groups.Count())
}

func TestCollectFilter(t *testing.T) {
	groups, err := Collect(stdinLines("2018-01-14  12  My description  mytag1,mytag2\n"), parser.NewTagSet("mytag1"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"mytag1"}, groups.Tags())
}

func TestCollectMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Collect(source.Lines([]string{missing}, nil), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBalanceAndAll(t *testing.T) {
	input := strings.Join([]string{
		"2018-01-14  34  Second  mytag",
		"2018-01-13  12  First  mytag",
		"2018-01-12  100  Other  other",
	}, "\n")
	groups, err := Collect(stdinLines(input), nil, nil)
	require.NoError(t, err)

	Balance(groups)
	mytag := groups.Records("mytag")
	require.Len(t, mytag, 2)
	assert.Equal(t, "First", mytag[0].Description)
	assert.Equal(t, "12", mytag[0].Balance.Decimal.String())
	assert.Equal(t, "46", mytag[1].Balance.Decimal.String())

	all := All(groups)
	require.Len(t, all, 3)
	assert.Equal(t, "Other", all[0].Description)
	assert.Equal(t, "146", all[2].Balance.Decimal.String())
	assert.Equal(t, "46", groups.Records("mytag")[1].Balance.Decimal.String())
}

func TestCollectReportsOverlongLine(t *testing.T) {
	long := "2018-01-14  12  " + strings.Repeat("x", source.MaxLineSize) + "  food"
	input := "2018-01-13  5  Before  food\n" + long + "\n2018-01-15  7  After  food\n"

	var errs []reported
	groups, err := Collect(stdinLines(input), nil, func(l source.Line, err error) {
		errs = append(errs, reported{l, err})
	})
	require.NoError(t, err, "an overlong line does not abort the run")

	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].line.Number)
	var lerr *parser.LineFormatError
	require.True(t, errors.As(errs[0].err, &lerr))
	assert.True(t, strings.HasSuffix(lerr.Line, "..."))
	assert.Less(t, len(lerr.Line), 100, "the report quotes only the start of the line")

	recs := groups.Records("food")
	require.Len(t, recs, 2)
	assert.Equal(t, "Before", recs[0].Description)
	assert.Equal(t, "After", recs[1].Description)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short"))
	assert.Equal(t, strings.Repeat("a", excerptLen)+"...", excerpt(strings.Repeat("a", excerptLen+1)))
	// Never split a multi-byte rune.
	got := excerpt(strings.Repeat("a", excerptLen-1) + "éé")
	assert.Equal(t, strings.Repeat("a", excerptLen-1)+"...", got)
}
