package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudio-luma-me/models"
)

func TestNormalizeProjectMapsAllFields(t *testing.T) {
	p := models.Project{
		ID:              "p1",
		Title:           "Rebrand",
		Description:     "Full rebrand",
		LongDescription: "A complete identity refresh",
		Category:        "design",
		Industry:        "food",
		ImageURL:        "https://img.example/p1.jpg",
		Gallery:         []string{"https://img.example/p1-2.jpg"},
		VideoURL:        "https://video.example/p1",
		Tags:            []string{"branding"},
		Client:          "Panadería Sol",
		Date:            "2024",
		CreatedAt:       1000,
		DisplayOrder:    intPtr(3),
	}

	item, ok := NormalizeProject(p, 9999)
	require.True(t, ok)

	assert.Equal(t, "p1", item.ID)
	assert.Equal(t, "Rebrand", item.Title)
	assert.Equal(t, models.CategoryDesign, item.Category)
	assert.Equal(t, "food", item.Industry)
	assert.Equal(t, int64(1000), item.CreatedAt, "stored createdAt must win over the fallback")
	require.NotNil(t, item.DisplayOrder)
	assert.Equal(t, 3, *item.DisplayOrder)
	assert.False(t, item.IsLegacy)
}

func TestNormalizeProjectDropsMalformedRecords(t *testing.T) {
	base := validProject("p1", 100, nil)

	tests := []struct {
		name   string
		mutate func(*models.Project)
	}{
		{"missing id", func(p *models.Project) { p.ID = "" }},
		{"missing title", func(p *models.Project) { p.Title = "" }},
		{"missing image", func(p *models.Project) { p.ImageURL = "" }},
		{"missing category", func(p *models.Project) { p.Category = "" }},
		{"unknown category", func(p *models.Project) { p.Category = "sculpture" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			_, ok := NormalizeProject(p, 100)
			assert.False(t, ok)
		})
	}
}

func TestNormalizeProjectAppliesFallbackCreatedAt(t *testing.T) {
	p := validProject("p1", 0, nil)

	item, ok := NormalizeProject(p, 424242)
	require.True(t, ok)
	assert.Equal(t, int64(424242), item.CreatedAt)
}

func TestNormalizeProjectsSkipsBadRowsKeepsRest(t *testing.T) {
	projects := []models.Project{
		validProject("good1", 100, nil),
		{ID: "bad", Category: "design"}, // no title, no image
		validProject("good2", 200, nil),
	}

	items := NormalizeProjects(projects, 100)
	require.Len(t, items, 2)
	assert.Equal(t, "good1", items[0].ID)
	assert.Equal(t, "good2", items[1].ID)
}

func TestNormalizeLogoLegacyMapping(t *testing.T) {
	l := models.Logo{
		ID:        "42",
		Name:      "Café Andino",
		ImageURL:  "https://img.example/42.png",
		Industry:  "food",
		CreatedAt: 500,
	}

	item := NormalizeLogo(l, 9999)

	assert.Equal(t, "legacy_42", item.ID)
	assert.Equal(t, "Café Andino", item.Title)
	assert.Equal(t, models.CategoryLogo, item.Category)
	assert.True(t, item.IsLegacy)
	assert.Equal(t, int64(500), item.CreatedAt)
	// Placeholders keep downstream display code free of null handling.
	assert.NotEmpty(t, item.Description)
	assert.NotEmpty(t, item.Tags)
}

func TestNormalizeLogoDeepLinkUsesLogoNamespace(t *testing.T) {
	l := models.Logo{ID: "42", Name: "Café Andino", ImageURL: "https://img.example/42.png"}

	item := NormalizeLogoDeepLink(l, 100)

	assert.Equal(t, "logo_42", item.ID)
	assert.True(t, item.IsLegacy)
}

func TestNormalizeLogoAppliesFallbackCreatedAt(t *testing.T) {
	l := models.Logo{ID: "7", Name: "Siete", ImageURL: "https://img.example/7.png"}

	item := NormalizeLogo(l, 31337)
	assert.Equal(t, int64(31337), item.CreatedAt)
}
