package models

import (
	"fmt"
	"strings"
)

// Category classifies a catalog item. "all" is only ever a filter value,
// it is never stored on an item.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryLogo   Category = "logo"
	CategoryDesign Category = "design"
	CategoryWeb    Category = "web"
	CategoryVideo  Category = "video"
)

// ParseCategory normalizes and validates a stored category value.
// Unknown values are a data error, not a new category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryLogo:
		return CategoryLogo, nil
	case CategoryDesign:
		return CategoryDesign, nil
	case CategoryWeb:
		return CategoryWeb, nil
	case CategoryVideo:
		return CategoryVideo, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// CatalogItem is the canonical shape every portfolio entry is normalized
// into, regardless of which source schema it came from. Immutable once built.
type CatalogItem struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Category        Category `json:"category"`
	Industry        string   `json:"industry,omitempty"`
	ImageURL        string   `json:"imageUrl"`
	Gallery         []string `json:"gallery,omitempty"`
	VideoURL        string   `json:"videoUrl,omitempty"`
	Tags            []string `json:"tags"`
	Client          string   `json:"client,omitempty"`
	Date            string   `json:"date,omitempty"`
	CreatedAt       int64    `json:"createdAt"`
	DisplayOrder    *int     `json:"displayOrder,omitempty"`
	IsLegacy        bool     `json:"isLegacy,omitempty"`
}

// CatalogSlice is one window over an ordered, filtered catalog, as served
// to a single display surface.
type CatalogSlice struct {
	Items     []CatalogItem `json:"items"`
	Total     int           `json:"total"`
	HasMore   bool          `json:"hasMore"`
	CanShrink bool          `json:"canShrink"`
}
