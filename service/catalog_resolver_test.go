package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudio-luma-me/models"
)

func newTestCatalogService(projects []models.Project, logos []models.Logo) *CatalogService {
	projectRepo := &fakeProjectRepo{projects: projects}
	logoRepo := &fakeLogoRepo{logos: logos}
	clock := newFakeClock()
	cache := NewCatalogCache(projectRepo, logoRepo, DefaultCatalogTTL, clock.Now)
	return NewCatalogService(cache, projectRepo, logoRepo, clock.Now)
}

func TestResolvePrimaryExactMatch(t *testing.T) {
	svc := newTestCatalogService([]models.Project{validProject("p1", 100, nil)}, nil)

	item, err := svc.Resolve(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", item.ID)
	assert.False(t, item.IsLegacy)
}

func TestResolveLegacyPrefixFallback(t *testing.T) {
	logos := []models.Logo{{ID: "42", Name: "Café Andino", ImageURL: "https://img.example/42.png", CreatedAt: 50}}
	svc := newTestCatalogService(nil, logos)

	// All historical prefix conventions must keep resolving.
	for _, id := range []string{"old_42", "logo_42", "legacy_42"} {
		item, err := svc.Resolve(context.Background(), id)
		require.NoError(t, err, "resolving %s", id)
		assert.Equal(t, "logo_42", item.ID)
		assert.True(t, item.IsLegacy)
		assert.Equal(t, "Café Andino", item.Title)
		assert.Equal(t, models.CategoryLogo, item.Category)
	}
}

func TestResolveBareLegacyID(t *testing.T) {
	logos := []models.Logo{{ID: "42", Name: "Café Andino", ImageURL: "https://img.example/42.png"}}
	svc := newTestCatalogService(nil, logos)

	item, err := svc.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "logo_42", item.ID)
}

func TestResolvePrimaryWinsOverLegacy(t *testing.T) {
	projects := []models.Project{validProject("42", 100, nil)}
	logos := []models.Logo{{ID: "42", Name: "Shadowed", ImageURL: "https://img.example/42.png"}}
	svc := newTestCatalogService(projects, logos)

	item, err := svc.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.False(t, item.IsLegacy, "exact primary match must win over the legacy fallback")
}

func TestResolveMissReportsNotFound(t *testing.T) {
	svc := newTestCatalogService([]models.Project{validProject("p1", 100, nil)}, nil)

	_, err := svc.Resolve(context.Background(), "old_999")
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestResolveSucceedsIffStrippedIDExists(t *testing.T) {
	logos := []models.Logo{{ID: "7", Name: "Siete", ImageURL: "https://img.example/7.png"}}
	svc := newTestCatalogService(nil, logos)

	_, err := svc.Resolve(context.Background(), "old_7")
	assert.NoError(t, err)

	_, err = svc.Resolve(context.Background(), "old_8")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestStripLegacyPrefix(t *testing.T) {
	assert.Equal(t, "42", stripLegacyPrefix("legacy_42"))
	assert.Equal(t, "42", stripLegacyPrefix("logo_42"))
	assert.Equal(t, "42", stripLegacyPrefix("old_42"))
	assert.Equal(t, "plain", stripLegacyPrefix("plain"))
	// Only the first matching prefix is stripped.
	assert.Equal(t, "logo_42", stripLegacyPrefix("legacy_logo_42"))
}

func TestCombinedAndLogoGalleryViews(t *testing.T) {
	projects := []models.Project{
		validProject("d1", 300, nil),
		{
			ID: "l1", Title: "Logo proyecto", Category: "logo",
			ImageURL: "https://img.example/l1.png", CreatedAt: 200,
		},
	}
	logos := []models.Logo{{ID: "x", Name: "Equis", ImageURL: "https://img.example/x.png", CreatedAt: 100}}
	svc := newTestCatalogService(projects, logos)
	ctx := context.Background()

	combined := svc.Combined(ctx)
	assert.Equal(t, []string{"d1", "l1", "legacy_x"}, itemIDs(combined))

	// The logo wall only carries LOGO items, merged across both sources.
	gallery := svc.LogoGallery(ctx)
	assert.Equal(t, []string{"l1", "legacy_x"}, itemIDs(gallery))

	latest := svc.Latest(ctx, 2)
	assert.Equal(t, []string{"d1", "l1"}, itemIDs(latest))
}
