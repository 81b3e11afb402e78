package service

import "estudio-luma-me/models"

// seedCatalog returns the built-in collection served when the backend is
// unreachable. The brochure site renders these instead of an error state;
// they are intentionally generic and carry no displayOrder so real data
// always outranks them once the fetch recovers.
func seedCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:          "seed-branding",
			Title:       "Identidad de marca",
			Description: "Branding integral para marcas que quieren destacar.",
			Category:    models.CategoryDesign,
			ImageURL:    "/static/seed/branding.jpg",
			Tags:        []string{"branding", "identidad"},
			CreatedAt:   3,
		},
		{
			ID:          "seed-web",
			Title:       "Sitios web a medida",
			Description: "Diseño y desarrollo de experiencias web.",
			Category:    models.CategoryWeb,
			ImageURL:    "/static/seed/web.jpg",
			Tags:        []string{"web", "ux"},
			CreatedAt:   2,
		},
		{
			ID:          "seed-logo",
			Title:       "Logotipos",
			Description: "Logotipos memorables para todo tipo de industria.",
			Category:    models.CategoryLogo,
			ImageURL:    "/static/seed/logo.jpg",
			Tags:        []string{"logo"},
			CreatedAt:   1,
		},
	}
}
