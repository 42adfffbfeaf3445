package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsPreserveOrder(t *testing.T) {
	g := NewGroups()
	g.Add(Record{Tag: "rent", Date: "2018-01-02", Amount: decimal.NewFromInt(1)})
	g.Add(Record{Tag: "food", Date: "2018-01-01", Amount: decimal.NewFromInt(2)})
	g.Add(Record{Tag: "rent", Date: "2018-01-01", Amount: decimal.NewFromInt(3)})

	assert.Equal(t, []string{"rent", "food"}, g.Tags())
	assert.Equal(t, []string{"food", "rent"}, g.Sorted())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Count())

	rent := g.Records("rent")
	require.Len(t, rent, 2)
	assert.Equal(t, "2018-01-02", rent[0].Date, "records keep line order before balancing")
	assert.Equal(t, "2018-01-01", rent[1].Date)
}

func TestGroupsKeepTagCase(t *testing.T) {
	g := NewGroups()
	g.Add(Record{Tag: "Food"})
	g.Add(Record{Tag: "food"})

	assert.Equal(t, 2, g.Len())
	assert.Nil(t, g.Records("FOOD"))
}

func TestRecordHasBalance(t *testing.T) {
	r := Record{Tag: "x"}
	assert.False(t, r.HasBalance())

	r.Balance = decimal.NewNullDecimal(decimal.NewFromInt(5))
	assert.True(t, r.HasBalance())
}
