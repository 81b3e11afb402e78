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

// ProjectController handles admin CRUD for current-schema projects
type ProjectController struct {
	repository     repository.ProjectRepositoryInterface
	catalogService service.CatalogServiceInterface
}

// NewProjectController creates a new ProjectController
func NewProjectController(repo repository.ProjectRepositoryInterface, catalogService service.CatalogServiceInterface) *ProjectController {
	return &ProjectController{repository: repo, catalogService: catalogService}
}

// CreateProject handles POST /admin/projects
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ProjectUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.ImageURL == "" {
		http.Error(w, "title and imageUrl are required", http.StatusBadRequest)
		return
	}
	if _, err := models.ParseCategory(req.Category); err != nil {
		http.Error(w, fmt.Sprintf("Invalid category: %v", err), http.StatusBadRequest)
		return
	}

	project := &models.Project{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Category:        req.Category,
		Industry:        req.Industry,
		ImageURL:        req.ImageURL,
		Gallery:         req.Gallery,
		VideoURL:        req.VideoURL,
		Tags:            req.Tags,
		Client:          req.Client,
		Date:            req.Date,
		CreatedAt:       time.Now().UnixMilli(),
		DisplayOrder:    req.DisplayOrder,
	}

	if err := c.repository.Insert(r.Context(), project); err != nil {
		http.Error(w, fmt.Sprintf("Failed to create project: %v", err), http.StatusInternalServerError)
		return
	}

	// Next catalog read must observe the new record.
	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// UpdateProject handles PUT /admin/projects/:id
func (c *ProjectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/projects/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	var req models.ProjectUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if _, err := models.ParseCategory(req.Category); err != nil {
		http.Error(w, fmt.Sprintf("Invalid category: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.repository.Update(r.Context(), id, &req); err != nil {
		http.Error(w, fmt.Sprintf("Failed to update project: %v", err), http.StatusInternalServerError)
		return
	}

	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Project updated successfully",
		"id":      id,
	})
}

// DeleteProject handles DELETE /admin/projects/:id
func (c *ProjectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/projects/")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete project: %v", err), http.StatusInternalServerError)
		return
	}

	c.catalogService.ClearCache()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "success",
		"message": "Project deleted successfully",
		"id":      id,
	})
}
