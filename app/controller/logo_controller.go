package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
	"estudio-luma-me/service"
)

// LogoController handles admin CRUD for legacy-schema logo records. New
// logo work normally goes into projects; this surface exists to maintain
// the records behind previously shared links.
type LogoController struct {
	repository     repository.LogoRepositoryInterface
	catalogService service.CatalogServiceInterface
}

// NewLogoController creates a new LogoController
func NewLogoController(repo repository.LogoRepositoryInterface, catalogService service.CatalogServiceInterface) *LogoController {
	return &LogoController{repository: repo, catalogService: catalogService}
}

// CreateLogo handles POST /admin/logos
func (c *LogoController) CreateLogo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LogoUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.ImageURL == "" {
		http.Error(w, "name and imageUrl are required", http.StatusBadRequest)
		return
	}

	logo := &models.Logo{
		ID:           uuid.NewString(),
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		Industry:     req.Industry,
		DisplayOrder: req.DisplayOrder,
		CreatedAt:    time.Now().UnixMilli(),
	}

	if err := c.repository.Insert(r.Context(), logo); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create logo: %v", err), http.StatusInternalServerError)
		return
	}

	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(logo)
}

// UpdateLogo handles PUT /admin/logos/:id
func (c *LogoController) UpdateLogo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/logos/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	var req models.LogoUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.repository.Update(r.Context(), id, &req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update logo: %v", err), http.StatusInternalServerError)
		return
	}

	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Logo updated successfully",
		"id":      id,
	})
}

// DeleteLogo handles DELETE /admin/logos/:id
func (c *LogoController) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/logos/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete logo: %v", err), http.StatusInternalServerError)
		return
	}

	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Logo deleted successfully",
		"id":      id,
	})
}
