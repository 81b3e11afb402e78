package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"estudio-luma-me/models"
	"estudio-luma-me/service"
)

// CatalogController handles the public catalog endpoints the brochure site
// reads from
type CatalogController struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService service.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// parseLimit reads the window size from the limit query parameter,
// defaulting to the initial window.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return service.DefaultWindowSize, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}

// parseFilter reads the combinable category and industry predicates from
// the query string.
func parseFilter(r *http.Request) (service.CatalogFilter, error) {
	filter := service.CatalogFilter{Industry: r.URL.Query().Get("industry")}

	raw := r.URL.Query().Get("category")
	if raw == "" || raw == string(models.CategoryAll) {
		filter.Category = models.CategoryAll
		return filter, nil
	}

	category, err := models.ParseCategory(raw)
	if err != nil {
		return service.CatalogFilter{}, err
	}
	filter.Category = category
	return filter, nil
}

// GetCatalog handles GET /api/catalog
// Returns a window over the merged, combined-ordered catalog.
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid category: %v", err), http.StatusBadRequest)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid limit: %v", err), http.StatusBadRequest)
		return
	}

	catalog := c.catalogService.Combined(r.Context())
	slice := service.SelectSlice(catalog, filter, limit, service.DefaultWindowSize)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(slice); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetLatest handles GET /api/catalog/latest
// Returns the most recent items across all categories, ignoring curation
// order.
func (c *CatalogController) GetLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid limit: %v", err), http.StatusBadRequest)
		return
	}

	items := c.catalogService.Latest(r.Context(), limit)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetLogoGallery handles GET /api/logos
// Returns the merged logo wall in combined order.
func (c *CatalogController) GetLogoGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logos := c.catalogService.LogoGallery(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(logos); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetItem handles GET /api/catalog/item?id=...
// Resolves a deep-link identifier, including legacy-prefixed ones. A miss
// is a 404 with a null item, which the front end treats as "no deep link
// requested".
func (c *CatalogController) GetItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	item, err := c.catalogService.Resolve(r.Context(), id)

	w.Header().Set("Content-Type", "application/json")
	if err == service.ErrItemNotFound {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"item": nil})
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to resolve item: %v", err), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]interface{}{"item": item}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
