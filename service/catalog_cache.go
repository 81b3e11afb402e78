package service

import (
	"context"
	"log"
	"sync"
	"time"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
)

// DefaultCatalogTTL is how long one fetched-and-normalized snapshot stays
// valid before the next read triggers a fresh fetch.
const DefaultCatalogTTL = 5 * time.Minute

// catalogEpoch is one snapshot of both normalized collections. It is
// replaced wholesale, never mutated field by field, so readers never see a
// half-updated epoch. provisional marks a snapshot built from seed or
// partial data; it is served but never treated as fresh, so the next read
// retries the real fetch.
type catalogEpoch struct {
	projects    []models.CatalogItem
	logos       []models.CatalogItem
	fetchedAt   time.Time
	provisional bool
}

// CatalogCache memoizes the normalized collections for all display
// surfaces of the process. The clock is injectable so expiry is testable
// without wall-clock waits.
type CatalogCache struct {
	projectRepo repository.ProjectRepositoryInterface
	logoRepo    repository.LogoRepositoryInterface
	ttl         time.Duration
	now         func() time.Time

	mu    sync.Mutex
	epoch *catalogEpoch
}

// NewCatalogCache creates a new CatalogCache. A nil clock defaults to
// time.Now; a non-positive ttl defaults to DefaultCatalogTTL.
func NewCatalogCache(projectRepo repository.ProjectRepositoryInterface, logoRepo repository.LogoRepositoryInterface, ttl time.Duration, now func() time.Time) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CatalogCache{
		projectRepo: projectRepo,
		logoRepo:    logoRepo,
		ttl:         ttl,
		now:         now,
	}
}

// Collections returns both normalized collections from the current epoch,
// fetching a fresh one when none exists or the epoch has aged out. All
// callers within one epoch observe the same slices, and the lock is held
// across the fetch so simultaneously mounted surfaces share a single
// round trip.
func (c *CatalogCache) Collections(ctx context.Context) (projects, logos []models.CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != nil && !c.epoch.provisional && c.now().Sub(c.epoch.fetchedAt) <= c.ttl {
		return c.epoch.projects, c.epoch.logos
	}

	c.epoch = c.fetch(ctx)
	return c.epoch.projects, c.epoch.logos
}

// Projects returns the normalized primary collection.
func (c *CatalogCache) Projects(ctx context.Context) []models.CatalogItem {
	projects, _ := c.Collections(ctx)
	return projects
}

// Logos returns the normalized secondary collection.
func (c *CatalogCache) Logos(ctx context.Context) []models.CatalogItem {
	_, logos := c.Collections(ctx)
	return logos
}

// Clear drops the current epoch unconditionally. Called after every
// successful admin mutation so the next read observes fresh data.
func (c *CatalogCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch = nil
	log.Printf("🧹 Catalog cache cleared")
}

// fetch builds a new epoch. A primary fetch failure falls back to the
// built-in seed collection; a secondary failure degrades to the primary
// collection alone. Either way the epoch is provisional, so the failure is
// never cached for a full TTL.
func (c *CatalogCache) fetch(ctx context.Context) *catalogEpoch {
	fetchedAt := c.now()
	// One fallback stamp per batch keeps relative order of stamped records
	// stable across re-fetches within the epoch.
	fallbackCreatedAt := fetchedAt.UnixMilli()

	epoch := &catalogEpoch{fetchedAt: fetchedAt}

	rawProjects, err := c.projectRepo.GetAll(ctx)
	if err != nil {
		log.Printf("❌ Primary catalog fetch failed, serving seed collection: %v", err)
		epoch.projects = seedCatalog()
		epoch.logos = []models.CatalogItem{}
		epoch.provisional = true
		return epoch
	}
	epoch.projects = NormalizeProjects(rawProjects, fallbackCreatedAt)

	rawLogos, err := c.logoRepo.GetAll(ctx)
	if err != nil {
		log.Printf("⚠️  Secondary catalog fetch failed, proceeding without legacy logos: %v", err)
		epoch.logos = []models.CatalogItem{}
		epoch.provisional = true
		return epoch
	}
	epoch.logos = NormalizeLogos(rawLogos, fallbackCreatedAt)

	log.Printf("✓ Catalog epoch refreshed: %d projects, %d legacy logos", len(epoch.projects), len(epoch.logos))
	return epoch
}
