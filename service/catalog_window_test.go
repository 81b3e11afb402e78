package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudio-luma-me/models"
)

func windowFixture() []models.CatalogItem {
	items := make([]models.CatalogItem, 0, 20)
	for i := 0; i < 20; i++ {
		category := models.CategoryDesign
		industry := "food"
		if i%2 == 0 {
			category = models.CategoryWeb
			industry = "retail"
		}
		items = append(items, models.CatalogItem{
			ID:       fmt.Sprintf("item-%02d", i),
			Category: category,
			Industry: industry,
		})
	}
	return items
}

func TestSelectSliceWindowing(t *testing.T) {
	items := windowFixture()

	slice := SelectSlice(items, CatalogFilter{}, 9, 9)
	assert.Len(t, slice.Items, 9)
	assert.Equal(t, 20, slice.Total)
	assert.True(t, slice.HasMore)
	assert.False(t, slice.CanShrink)

	grown := SelectSlice(items, CatalogFilter{}, 15, 9)
	assert.Len(t, grown.Items, 15)
	assert.True(t, grown.HasMore)
	assert.True(t, grown.CanShrink)

	all := SelectSlice(items, CatalogFilter{}, 25, 9)
	assert.Len(t, all.Items, 20)
	assert.False(t, all.HasMore)
}

func TestSelectSliceWindowsArePrefixes(t *testing.T) {
	items := windowFixture()
	filter := CatalogFilter{Category: models.CategoryDesign}

	for n := 0; n < 12; n += 3 {
		smaller := SelectSlice(items, filter, n, 9)
		larger := SelectSlice(items, filter, n+5, 9)
		require.GreaterOrEqual(t, len(larger.Items), len(smaller.Items))
		assert.Equal(t, itemIDs(smaller.Items), itemIDs(larger.Items[:len(smaller.Items)]),
			"window of size %d must be a prefix of size %d", n, n+5)
	}
}

func TestCatalogFilterPredicatesCombine(t *testing.T) {
	item := models.CatalogItem{Category: models.CategoryWeb, Industry: "retail"}

	assert.True(t, CatalogFilter{}.Matches(item))
	assert.True(t, CatalogFilter{Category: models.CategoryAll}.Matches(item))
	assert.True(t, CatalogFilter{Category: models.CategoryWeb}.Matches(item))
	assert.False(t, CatalogFilter{Category: models.CategoryVideo}.Matches(item))
	assert.True(t, CatalogFilter{Industry: "retail"}.Matches(item))
	assert.False(t, CatalogFilter{Industry: "food"}.Matches(item))
	assert.True(t, CatalogFilter{Category: models.CategoryWeb, Industry: "retail"}.Matches(item))
	assert.False(t, CatalogFilter{Category: models.CategoryWeb, Industry: "food"}.Matches(item))
}

func TestWindowGrowAndReset(t *testing.T) {
	w := NewWindow(9, 6)
	assert.Equal(t, 9, w.Size())

	w.Grow()
	w.Grow()
	assert.Equal(t, 21, w.Size())

	w.Reset()
	assert.Equal(t, 9, w.Size())
}

func TestWindowFilterChangeResetsSize(t *testing.T) {
	w := NewWindow(9, 6)
	w.SetFilter(CatalogFilter{Category: models.CategoryDesign})
	w.Grow()
	w.Grow()
	require.Equal(t, 21, w.Size())

	// Same filter again: size survives.
	w.SetFilter(CatalogFilter{Category: models.CategoryDesign})
	assert.Equal(t, 21, w.Size())

	// Category change resets.
	w.SetFilter(CatalogFilter{Category: models.CategoryWeb})
	assert.Equal(t, 9, w.Size())

	// Industry change resets too.
	w.Grow()
	w.SetFilter(CatalogFilter{Category: models.CategoryWeb, Industry: "food"})
	assert.Equal(t, 9, w.Size())
}

func TestWindowSliceReportsCanShrink(t *testing.T) {
	w := NewWindow(4, 4)
	items := windowFixture()

	slice := w.Slice(items)
	assert.False(t, slice.CanShrink)

	w.Grow()
	slice = w.Slice(items)
	assert.True(t, slice.CanShrink)
	assert.Len(t, slice.Items, 8)
}
