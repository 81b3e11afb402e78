package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"estudio-luma-me/service"
	"estudio-luma-me/utils"
)

// maxUploadBytes caps a single image upload at 20 MB.
const maxUploadBytes = 20 << 20

// UploadController handles image uploads, the bulk re-encode utility and
// the portfolio export
type UploadController struct {
	storage  service.StorageServiceInterface
	reencode service.ReencodeServiceInterface
	export   service.ExportServiceInterface
}

// NewUploadController creates a new UploadController
func NewUploadController(storage service.StorageServiceInterface, reencode service.ReencodeServiceInterface, export service.ExportServiceInterface) *UploadController {
	return &UploadController{storage: storage, reencode: reencode, export: export}
}

// Upload handles POST /admin/uploads
// Accepts a multipart "file" field, optimizes the image and stores it,
// returning the public URL to put on a record.
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	if _, err := utils.ImageMimeType(header.Filename); err != nil {
		http.Error(w, fmt.Sprintf("Invalid upload: %v", err), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "full"
	}

	optimized, err := service.OptimizeImage(data, size)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusUnprocessableEntity)
		return
	}

	// Object names carry a uuid so repeated uploads of the same file never
	// collide.
	name := fmt.Sprintf("%s-%s.jpg", uuid.NewString()[:8], utils.SanitizeFileName(header.Filename))

	url, err := c.storage.Upload(r.Context(), name, optimized, "image/jpeg")
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to store image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"imageUrl": url,
		"name":     name,
	})
}

// ReencodeAll handles POST /admin/images/reencode
// Walks the storage folder and re-encodes every image in place.
func (c *UploadController) ReencodeAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := c.reencode.ReencodeAll(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to re-encode images: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ExportPortfolio handles GET /admin/export/portfolio
// Streams the portfolio press kit as a PDF download.
func (c *UploadController) ExportPortfolio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pdf, err := c.export.GeneratePortfolioPDF(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to export portfolio: %v", err), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("portfolio-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(pdf)
}
