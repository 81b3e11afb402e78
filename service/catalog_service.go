package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
)

// ErrItemNotFound reports a deep-link identifier that matches nothing in
// either source. Callers render it as "no item selected", never as an
// error state.
var ErrItemNotFound = errors.New("catalog item not found")

// CatalogService serves the merged catalog views and resolves deep links.
// Implements CatalogServiceInterface
type CatalogService struct {
	cache       *CatalogCache
	projectRepo repository.ProjectRepositoryInterface
	logoRepo    repository.LogoRepositoryInterface
	now         func() time.Time
}

// NewCatalogService creates a new CatalogService. A nil clock defaults to
// time.Now.
func NewCatalogService(cache *CatalogCache, projectRepo repository.ProjectRepositoryInterface, logoRepo repository.LogoRepositoryInterface, now func() time.Time) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{
		cache:       cache,
		projectRepo: projectRepo,
		logoRepo:    logoRepo,
		now:         now,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// Combined returns the full merged catalog in combined order: every
// current-schema project plus every legacy logo, deduplicated by id.
func (s *CatalogService) Combined(ctx context.Context) []models.CatalogItem {
	projects, logos := s.cache.Collections(ctx)
	return MergeCatalog(projects, logos)
}

// Latest returns the n most recent items across all categories, for the
// highlight rails. Ignores explicit display order entirely.
func (s *CatalogService) Latest(ctx context.Context, n int) []models.CatalogItem {
	projects, logos := s.cache.Collections(ctx)
	return LatestItems(MergeCatalog(projects, logos), n)
}

// LogoGallery returns the logo wall: current-schema LOGO projects merged
// with the legacy logos, in combined order.
func (s *CatalogService) LogoGallery(ctx context.Context) []models.CatalogItem {
	projects, logos := s.cache.Collections(ctx)

	primaryLogos := make([]models.CatalogItem, 0, len(projects))
	for _, item := range projects {
		if item.Category == models.CategoryLogo {
			primaryLogos = append(primaryLogos, item)
		}
	}

	return MergeCatalog(primaryLogos, logos)
}

// ClearCache drops the current catalog epoch. Called after admin
// mutations.
func (s *CatalogService) ClearCache() {
	s.cache.Clear()
}

// Resolve looks up a single catalog item by deep-link identifier. Current
// ids are tried against the primary source first; on a miss the known
// legacy prefixes are stripped and the secondary source is consulted, with
// the hit synthesized on the fly (never cached). The two-tier lookup keeps
// every previously shared link resolvable.
func (s *CatalogService) Resolve(ctx context.Context, id string) (*models.CatalogItem, error) {
	if id == "" {
		return nil, ErrItemNotFound
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err == nil {
		item, ok := NormalizeProject(*project, s.now().UnixMilli())
		if ok {
			return &item, nil
		}
		// Stored but malformed: treated like a miss, fall through to the
		// legacy lookup.
		log.Printf("⚠️  Project %s exists but failed normalization", id)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to resolve %s against primary source: %w", id, err)
	}

	stripped := stripLegacyPrefix(id)
	logo, err := s.logoRepo.GetByID(ctx, stripped)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to resolve %s against secondary source: %w", id, err)
	}

	item := NormalizeLogoDeepLink(*logo, s.now().UnixMilli())
	return &item, nil
}

// stripLegacyPrefix removes the first matching historical namespace prefix
// from a deep-link identifier.
func stripLegacyPrefix(id string) string {
	for _, prefix := range []string{LegacyPrefix, LogoPrefix, OldPrefix} {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return id
}
