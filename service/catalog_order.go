package service

import (
	"sort"

	"estudio-luma-me/models"
)

// The two ordering policies below are deliberately separate. The combined
// view honors explicit curation (displayOrder) before recency; the latest
// rails ignore curation entirely. Their tie-break intent differs, so they
// stay as two named comparators.

// combinedLess orders the merged catalog: both displayOrder set → lower
// value first; exactly one set → the explicit one first; neither →
// createdAt descending (newest first).
func combinedLess(a, b models.CatalogItem) bool {
	switch {
	case a.DisplayOrder != nil && b.DisplayOrder != nil:
		return *a.DisplayOrder < *b.DisplayOrder
	case a.DisplayOrder != nil:
		return true
	case b.DisplayOrder != nil:
		return false
	default:
		return a.CreatedAt > b.CreatedAt
	}
}

// latestLess orders the cross-category highlight rails purely by recency.
func latestLess(a, b models.CatalogItem) bool {
	return a.CreatedAt > b.CreatedAt
}

// MergeCatalog deduplicates the union of the primary and secondary
// collections by id and orders the result with the combined policy.
// When an id appears more than once, the last-seen occurrence wins, at the
// position of the first occurrence (a current-schema item and a legacy item
// sharing an id must never both surface). Sorting is stable: two merges
// over unchanged inputs yield identical sequences.
func MergeCatalog(primary, secondary []models.CatalogItem) []models.CatalogItem {
	position := make(map[string]int)
	merged := make([]models.CatalogItem, 0, len(primary)+len(secondary))

	for _, item := range primary {
		if at, seen := position[item.ID]; seen {
			merged[at] = item
			continue
		}
		position[item.ID] = len(merged)
		merged = append(merged, item)
	}
	for _, item := range secondary {
		if at, seen := position[item.ID]; seen {
			merged[at] = item
			continue
		}
		position[item.ID] = len(merged)
		merged = append(merged, item)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return combinedLess(merged[i], merged[j])
	})

	return merged
}

// LatestItems returns the n most recent items across the given collection,
// ignoring displayOrder. n <= 0 returns the whole ordered collection.
func LatestItems(items []models.CatalogItem, n int) []models.CatalogItem {
	ordered := append([]models.CatalogItem(nil), items...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return latestLess(ordered[i], ordered[j])
	})

	if n > 0 && n < len(ordered) {
		ordered = ordered[:n]
	}
	return ordered
}
