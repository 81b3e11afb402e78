package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"estudio-luma-me/db"
	"estudio-luma-me/models"
)

// SiteRepository handles database operations for site imagery and styling
// configuration. Implements SiteRepositoryInterface
type SiteRepository struct{}

// NewSiteRepository creates a new SiteRepository
func NewSiteRepository() *SiteRepository {
	return &SiteRepository{}
}

// Ensure SiteRepository implements SiteRepositoryInterface
var _ SiteRepositoryInterface = (*SiteRepository)(nil)

// GetImages retrieves all site image slots
func (r *SiteRepository) GetImages(ctx context.Context) ([]models.SiteImage, error) {
	log.Printf("🔍 Fetching site images")

	query := `
		SELECT id, key, COALESCE(image_url, '') as image_url, COALESCE(alt_text, '') as alt_text
		FROM site_images
		ORDER BY key ASC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching site images: %v", err)
		return nil, fmt.Errorf("failed to get site images: %w", err)
	}
	defer rows.Close()

	var images []models.SiteImage
	for rows.Next() {
		var img models.SiteImage
		if err := rows.Scan(&img.ID, &img.Key, &img.ImageURL, &img.AltText); err != nil {
			log.Printf("❌ Error scanning site image: %v", err)
			continue
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate site images: %w", err)
	}

	log.Printf("✓ Successfully fetched %d site images", len(images))
	return images, nil
}

// UpsertImage sets a site image slot, creating it if the key is new
func (r *SiteRepository) UpsertImage(ctx context.Context, req *models.SiteImageUpsertRequest) error {
	log.Printf("💾 Upserting site image slot: %s", req.Key)

	query := `
		INSERT INTO site_images (key, image_url, alt_text)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			image_url = excluded.image_url,
			alt_text = excluded.alt_text
	`

	if _, err := db.DB.ExecContext(ctx, query, req.Key, req.ImageURL, req.AltText); err != nil {
		log.Printf("❌ Error upserting site image %s: %v", req.Key, err)
		return fmt.Errorf("failed to upsert site image: %w", err)
	}

	log.Printf("✅ Successfully upserted site image slot: %s", req.Key)
	return nil
}

// DeleteImage removes a site image slot by key
func (r *SiteRepository) DeleteImage(ctx context.Context, key string) error {
	log.Printf("🗑️  Deleting site image slot: %s", key)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM site_images WHERE key = $1`, key)
	if err != nil {
		log.Printf("❌ Error deleting site image %s: %v", key, err)
		return fmt.Errorf("failed to delete site image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("site image with key %s not found", key)
	}

	log.Printf("✅ Successfully deleted site image slot: %s", key)
	return nil
}

// GetSettings retrieves the styling configuration document. A missing row
// yields the zero-value settings so the front end always has something to
// apply.
func (r *SiteRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	log.Printf("🔍 Fetching site settings")

	var settingsJSON []byte
	err := db.DB.QueryRowContext(ctx, `SELECT settings FROM site_settings WHERE id = 1`).Scan(&settingsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("⚠️  No site settings row, returning defaults")
			return &models.SiteSettings{}, nil
		}
		log.Printf("❌ Error fetching site settings: %v", err)
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	var settings models.SiteSettings
	if err := json.Unmarshal(settingsJSON, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode site settings: %w", err)
	}

	log.Printf("✓ Successfully fetched site settings")
	return &settings, nil
}

// UpdateSettings replaces the styling configuration document wholesale
func (r *SiteRepository) UpdateSettings(ctx context.Context, settings *models.SiteSettings) error {
	log.Printf("🔄 Updating site settings")

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode site settings: %w", err)
	}

	query := `
		INSERT INTO site_settings (id, settings) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET settings = excluded.settings
	`

	if _, err := db.DB.ExecContext(ctx, query, settingsJSON); err != nil {
		log.Printf("❌ Error updating site settings: %v", err)
		return fmt.Errorf("failed to update site settings: %w", err)
	}

	log.Printf("✅ Successfully updated site settings")
	return nil
}
