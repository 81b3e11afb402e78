package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"estudio-luma-me/db"
	"estudio-luma-me/models"
)

// LogoRepository handles database operations for legacy-schema logo records
// Implements LogoRepositoryInterface
type LogoRepository struct{}

// NewLogoRepository creates a new LogoRepository
func NewLogoRepository() *LogoRepository {
	return &LogoRepository{}
}

// Ensure LogoRepository implements LogoRepositoryInterface
var _ LogoRepositoryInterface = (*LogoRepository)(nil)

const logoColumns = `
	id, name,
	COALESCE(image_url, '') as image_url,
	COALESCE(industry, '') as industry,
	display_order,
	COALESCE(created_at, 0) as created_at
`

func scanLogo(scan func(dest ...interface{}) error) (*models.Logo, error) {
	var (
		l            models.Logo
		displayOrder sql.NullInt64
	)

	err := scan(
		&l.ID,
		&l.Name,
		&l.ImageURL,
		&l.Industry,
		&displayOrder,
		&l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if displayOrder.Valid {
		order := int(displayOrder.Int64)
		l.DisplayOrder = &order
	}
	return &l, nil
}

// GetAll retrieves every legacy logo record
func (r *LogoRepository) GetAll(ctx context.Context) ([]models.Logo, error) {
	log.Printf("🔍 Fetching all legacy logos")

	query := `SELECT ` + logoColumns + ` FROM logos ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching logos: %v", err)
		return nil, fmt.Errorf("failed to get logos: %w", err)
	}
	defer rows.Close()

	var logos []models.Logo
	for rows.Next() {
		l, err := scanLogo(rows.Scan)
		if err != nil {
			log.Printf("❌ Error scanning logo row: %v", err)
			continue
		}
		logos = append(logos, *l)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating logos: %v", err)
		return nil, fmt.Errorf("failed to iterate logos: %w", err)
	}

	log.Printf("✓ Successfully fetched %d legacy logos", len(logos))
	return logos, nil
}

// GetByID retrieves a single legacy logo by its raw (un-namespaced)
// identifier. A miss is reported as sql.ErrNoRows.
func (r *LogoRepository) GetByID(ctx context.Context, id string) (*models.Logo, error) {
	log.Printf("🔍 Fetching legacy logo by id: %s", id)

	query := `SELECT ` + logoColumns + ` FROM logos WHERE id = $1`

	row := db.DB.QueryRowContext(ctx, query, id)
	l, err := scanLogo(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("logo %s: %w", id, sql.ErrNoRows)
		}
		log.Printf("❌ Error fetching logo %s: %v", id, err)
		return nil, fmt.Errorf("failed to get logo: %w", err)
	}

	log.Printf("✓ Successfully fetched legacy logo: %s", id)
	return l, nil
}

// Insert inserts a new legacy logo record
func (r *LogoRepository) Insert(ctx context.Context, logo *models.Logo) error {
	log.Printf("💾 Inserting legacy logo: %s (%s)", logo.ID, logo.Name)

	query := `
		INSERT INTO logos (id, name, image_url, industry, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := db.DB.ExecContext(ctx, query,
		logo.ID,
		logo.Name,
		logo.ImageURL,
		logo.Industry,
		nullableOrder(logo.DisplayOrder),
		logo.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for logo %s: %v", logo.ID, err)
		return fmt.Errorf("failed to insert logo: %w", err)
	}

	log.Printf("✅ Successfully inserted legacy logo: %s", logo.ID)
	return nil
}

// Update updates the editable fields of a legacy logo by id
func (r *LogoRepository) Update(ctx context.Context, id string, req *models.LogoUpsertRequest) error {
	log.Printf("🔄 Updating legacy logo: id=%s, name=%s", id, req.Name)

	query := `
		UPDATE logos
		SET name = $1, image_url = $2, industry = $3, display_order = $4
		WHERE id = $5
	`

	result, err := db.DB.ExecContext(ctx, query,
		req.Name,
		req.ImageURL,
		req.Industry,
		nullableOrder(req.DisplayOrder),
		id,
	)
	if err != nil {
		log.Printf("❌ Error updating logo %s: %v", id, err)
		return fmt.Errorf("failed to update logo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		log.Printf("⚠️  No rows updated for id: %s (record may not exist)", id)
		return fmt.Errorf("logo with id %s not found", id)
	}

	log.Printf("✅ Successfully updated legacy logo: %s", id)
	return nil
}

// Delete removes a legacy logo record by id
func (r *LogoRepository) Delete(ctx context.Context, id string) error {
	log.Printf("🗑️  Deleting legacy logo: %s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM logos WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting logo %s: %v", id, err)
		return fmt.Errorf("failed to delete logo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("logo with id %s not found", id)
	}

	log.Printf("✅ Successfully deleted legacy logo: %s", id)
	return nil
}
