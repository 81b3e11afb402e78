package service

import (
	"context"
	"fmt"
	"log"
)

// ReencodeService walks the storage folder and re-encodes every image in
// place, keeping public URLs stable. Used from the admin dashboard after
// large raw uploads pile up. Implements ReencodeServiceInterface
type ReencodeService struct {
	storage StorageServiceInterface
}

// NewReencodeService creates a new ReencodeService
func NewReencodeService(storage StorageServiceInterface) *ReencodeService {
	return &ReencodeService{storage: storage}
}

// Ensure ReencodeService implements ReencodeServiceInterface
var _ ReencodeServiceInterface = (*ReencodeService)(nil)

// ReencodeStats summarizes one bulk run.
type ReencodeStats struct {
	Total     int      `json:"total"`
	Reencoded int      `json:"reencoded"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ReencodeAll re-encodes every image in the storage folder to optimized
// JPEG. A file that is already jpeg and does not shrink is skipped; a file
// that fails is recorded and the run continues.
func (s *ReencodeService) ReencodeAll(ctx context.Context) (*ReencodeStats, error) {
	log.Printf("🔄 Starting bulk re-encode of storage folder")

	images, err := s.storage.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list images for re-encode: %w", err)
	}

	stats := &ReencodeStats{Total: len(images)}

	for _, img := range images {
		data, err := s.storage.Download(ctx, img.FileID)
		if err != nil {
			log.Printf("❌ Error downloading %s: %v", img.Name, err)
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", img.Name, err))
			continue
		}

		optimized, err := OptimizeImage(data, "full")
		if err != nil {
			log.Printf("❌ Error optimizing %s: %v", img.Name, err)
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", img.Name, err))
			continue
		}

		if len(optimized) >= len(data) {
			log.Printf("⏭️  Skipping %s (already optimal: %d >= %d bytes)", img.Name, len(optimized), len(data))
			stats.Skipped++
			continue
		}

		if err := s.storage.Replace(ctx, img.FileID, optimized, "image/jpeg"); err != nil {
			log.Printf("❌ Error replacing %s: %v", img.Name, err)
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", img.Name, err))
			continue
		}

		log.Printf("✅ Re-encoded %s: %d -> %d bytes", img.Name, len(data), len(optimized))
		stats.Reencoded++
	}

	log.Printf("🎉 Bulk re-encode finished: %d re-encoded, %d skipped, %d errors, %d total",
		stats.Reencoded, stats.Skipped, len(stats.Errors), stats.Total)
	return stats, nil
}
