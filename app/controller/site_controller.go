package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
)

// SiteController handles site imagery and styling configuration
type SiteController struct {
	repository repository.SiteRepositoryInterface
}

// NewSiteController creates a new SiteController
func NewSiteController(repo repository.SiteRepositoryInterface) *SiteController {
	return &SiteController{repository: repo}
}

// GetImages handles GET /api/site/images
func (c *SiteController) GetImages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	images, err := c.repository.GetImages(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get site images: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(images); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetSettings handles GET /api/site/settings
func (c *SiteController) GetSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := c.repository.GetSettings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get site settings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpsertImage handles POST /admin/site-images
func (c *SiteController) UpsertImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SiteImageUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Key == "" || req.ImageURL == "" {
		http.Error(w, "key and imageUrl are required", http.StatusBadRequest)
		return
	}

	if err := c.repository.UpsertImage(r.Context(), &req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to save site image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Site image saved successfully",
		"key":     req.Key,
	})
}

// DeleteImage handles DELETE /admin/site-images/:key
func (c *SiteController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/admin/site-images/")
	if key == "" {
		http.Error(w, "key parameter is required", http.StatusBadRequest)
		return
	}

	if err := c.repository.DeleteImage(r.Context(), key); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete site image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Site image deleted successfully",
		"key":     key,
	})
}

// UpdateSettings handles PUT /admin/site-settings
// Replaces the styling configuration wholesale.
func (c *SiteController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var settings models.SiteSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.repository.UpdateSettings(r.Context(), &settings); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update site settings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Site settings updated successfully",
	})
}
