package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryByName(t *testing.T) {
	c, ok := CategoryByName(CategoryClothing)
	require.True(t, ok)
	assert.Equal(t, "Clothing", c.DisplayName)

	_, ok = CategoryByName("FURNITURE")
	assert.False(t, ok)
}

func TestSortOptionByValue(t *testing.T) {
	o, ok := SortOptionByValue("price-low")
	require.True(t, ok)
	assert.Equal(t, "price", o.Field)
	assert.Equal(t, "asc", o.Order)

	none, ok := SortOptionByValue("none")
	require.True(t, ok)
	assert.Empty(t, none.Field)

	_, ok = SortOptionByValue("random")
	assert.False(t, ok)
}

func TestEveryCategoryHasSubCategories(t *testing.T) {
	for _, c := range Categories {
		assert.NotEmpty(t, SubCategories[c.Name], c.Name)
	}
}

func TestPriceRangeBounds(t *testing.T) {
	all := PriceRanges[0]
	assert.False(t, all.Min.Valid)
	assert.False(t, all.Max.Valid)

	over := PriceRanges[len(PriceRanges)-1]
	require.True(t, over.Min.Valid)
	assert.Equal(t, "200", over.Min.Decimal.String())
	assert.False(t, over.Max.Valid)
}
