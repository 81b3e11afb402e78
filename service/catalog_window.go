package service

import "estudio-luma-me/models"

// Default window geometry for the portfolio grids: first paint shows
// DefaultWindowSize items, each "load more" adds WindowIncrement.
const (
	DefaultWindowSize = 9
	WindowIncrement   = 6
)

// CatalogFilter is the combinable predicate pair the display surfaces
// filter with. CategoryAll (or empty) and an empty industry each mean
// "no filter".
type CatalogFilter struct {
	Category models.Category
	Industry string
}

// Matches reports whether an item passes both predicates.
func (f CatalogFilter) Matches(item models.CatalogItem) bool {
	if f.Category != "" && f.Category != models.CategoryAll && item.Category != f.Category {
		return false
	}
	if f.Industry != "" && item.Industry != f.Industry {
		return false
	}
	return true
}

// SelectSlice returns the first size items of the ordered catalog matching
// the filter. hasMore reports matching items beyond the window; canShrink
// reports a window grown past its initial size. Windows are prefixes of
// one another as size grows.
func SelectSlice(items []models.CatalogItem, filter CatalogFilter, size, initial int) models.CatalogSlice {
	matching := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if filter.Matches(item) {
			matching = append(matching, item)
		}
	}

	total := len(matching)
	if size < 0 {
		size = 0
	}
	window := matching
	if size < total {
		window = matching[:size]
	}

	return models.CatalogSlice{
		Items:     window,
		Total:     total,
		HasMore:   total > len(window),
		CanShrink: size > initial,
	}
}

// Window is the stateful load-more window one display surface holds over
// the ordered catalog. Each surface owns its own Window; they never share
// size state.
type Window struct {
	initial   int
	increment int
	size      int
	filter    CatalogFilter
}

// NewWindow creates a Window with the given geometry. Non-positive values
// fall back to the package defaults.
func NewWindow(initial, increment int) *Window {
	if initial <= 0 {
		initial = DefaultWindowSize
	}
	if increment <= 0 {
		increment = WindowIncrement
	}
	return &Window{initial: initial, increment: increment, size: initial}
}

// SetFilter applies a predicate change. Any change resets the window to
// its initial size: a size grown for one filter's result count means
// nothing under another.
func (w *Window) SetFilter(filter CatalogFilter) {
	if filter != w.filter {
		w.filter = filter
		w.size = w.initial
	}
}

// Grow widens the window by one increment.
func (w *Window) Grow() {
	w.size += w.increment
}

// Reset restores the initial window size. The paired scroll-to-anchor is a
// front-end concern.
func (w *Window) Reset() {
	w.size = w.initial
}

// Size returns the current window size.
func (w *Window) Size() int {
	return w.size
}

// Slice applies the window to an ordered catalog.
func (w *Window) Slice(items []models.CatalogItem) models.CatalogSlice {
	return SelectSlice(items, w.filter, w.size, w.initial)
}
