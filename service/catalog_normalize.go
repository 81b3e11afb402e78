package service

import (
	"log"

	"estudio-luma-me/models"
)

// Identifier namespaces for legacy logo records. The logos table predates
// the unified projects schema and its ids were shared in deep links under
// more than one prefix over the years; all of them must keep resolving.
const (
	// LegacyPrefix namespaces legacy logos inside the merged catalog so
	// they can never collide with a current-schema id.
	LegacyPrefix = "legacy_"
	// LogoPrefix is the namespace historically used in shared deep links
	// to logo detail views.
	LogoPrefix = "logo_"
	// OldPrefix is the oldest deep-link convention, still found in the
	// wild.
	OldPrefix = "old_"
)

// Fixed placeholder content for legacy logos. The old schema never stored
// descriptions or tags, and downstream display code expects both to be
// non-empty.
const legacyLogoDescription = "Diseño de identidad visual y logotipo."

var legacyLogoTags = []string{"branding", "logo"}

// NormalizeProject maps a raw current-schema record into a canonical
// CatalogItem. A record missing a mandatory field (id, title, category,
// imageUrl) or carrying an unknown category is dropped, not errored: one
// malformed row must never keep the rest of the catalog from rendering.
// fallbackCreatedAt stamps records whose source lacks a creation instant;
// callers pass one value per batch so relative order is stable within a
// cache epoch.
func NormalizeProject(p models.Project, fallbackCreatedAt int64) (models.CatalogItem, bool) {
	if p.ID == "" || p.Title == "" || p.ImageURL == "" {
		log.Printf("⚠️  Dropping malformed project record (id=%q, title=%q)", p.ID, p.Title)
		return models.CatalogItem{}, false
	}

	category, err := models.ParseCategory(p.Category)
	if err != nil {
		log.Printf("⚠️  Dropping project %s: %v", p.ID, err)
		return models.CatalogItem{}, false
	}

	createdAt := p.CreatedAt
	if createdAt == 0 {
		createdAt = fallbackCreatedAt
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.CatalogItem{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Category:        category,
		Industry:        p.Industry,
		ImageURL:        p.ImageURL,
		Gallery:         p.Gallery,
		VideoURL:        p.VideoURL,
		Tags:            tags,
		Client:          p.Client,
		Date:            p.Date,
		CreatedAt:       createdAt,
		DisplayOrder:    p.DisplayOrder,
	}, true
}

// NormalizeLogo maps a raw legacy-schema record into a canonical
// CatalogItem for the merged catalog, namespacing the id under
// LegacyPrefix.
func NormalizeLogo(l models.Logo, fallbackCreatedAt int64) models.CatalogItem {
	return legacyItem(l, LegacyPrefix, fallbackCreatedAt)
}

// NormalizeLogoDeepLink maps a legacy record the way resolved deep links
// expect it: namespaced under LogoPrefix, the convention the links were
// originally shared with.
func NormalizeLogoDeepLink(l models.Logo, fallbackCreatedAt int64) models.CatalogItem {
	return legacyItem(l, LogoPrefix, fallbackCreatedAt)
}

// legacyItem is the shared legacy mapping. Category is forced to LOGO and
// the placeholder description/tags keep downstream display code free of
// null handling.
func legacyItem(l models.Logo, prefix string, fallbackCreatedAt int64) models.CatalogItem {
	createdAt := l.CreatedAt
	if createdAt == 0 {
		createdAt = fallbackCreatedAt
	}

	return models.CatalogItem{
		ID:           prefix + l.ID,
		Title:        l.Name,
		Description:  legacyLogoDescription,
		Category:     models.CategoryLogo,
		Industry:     l.Industry,
		ImageURL:     l.ImageURL,
		Tags:         append([]string(nil), legacyLogoTags...),
		CreatedAt:    createdAt,
		DisplayOrder: l.DisplayOrder,
		IsLegacy:     true,
	}
}

// NormalizeProjects maps a batch of raw project records, dropping the
// malformed ones.
func NormalizeProjects(projects []models.Project, fallbackCreatedAt int64) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(projects))
	for _, p := range projects {
		if item, ok := NormalizeProject(p, fallbackCreatedAt); ok {
			items = append(items, item)
		}
	}
	return items
}

// NormalizeLogos maps a batch of raw legacy logo records.
func NormalizeLogos(logos []models.Logo, fallbackCreatedAt int64) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(logos))
	for _, l := range logos {
		items = append(items, NormalizeLogo(l, fallbackCreatedAt))
	}
	return items
}
