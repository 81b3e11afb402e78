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

// ProjectRepository handles database operations for current-schema projects
// Implements ProjectRepositoryInterface
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Ensure ProjectRepository implements ProjectRepositoryInterface
var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

const projectColumns = `
	id, title,
	COALESCE(description, '') as description,
	COALESCE(long_description, '') as long_description,
	COALESCE(category, '') as category,
	COALESCE(industry, '') as industry,
	COALESCE(image_url, '') as image_url,
	COALESCE(gallery, '[]') as gallery,
	COALESCE(video_url, '') as video_url,
	COALESCE(tags, '[]') as tags,
	COALESCE(client, '') as client,
	COALESCE(display_date, '') as display_date,
	COALESCE(created_at, 0) as created_at,
	display_order
`

// scanProject scans one row into a Project. gallery and tags are stored as
// jsonb columns and unmarshalled here; a broken json blob fails the row,
// not the batch (callers skip and continue).
func scanProject(scan func(dest ...interface{}) error) (*models.Project, error) {
	var (
		p            models.Project
		galleryJSON  []byte
		tagsJSON     []byte
		displayOrder sql.NullInt64
	)

	err := scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&p.Category,
		&p.Industry,
		&p.ImageURL,
		&galleryJSON,
		&p.VideoURL,
		&tagsJSON,
		&p.Client,
		&p.Date,
		&p.CreatedAt,
		&displayOrder,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(galleryJSON, &p.Gallery); err != nil {
		return nil, fmt.Errorf("failed to decode gallery: %w", err)
	}
	if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if displayOrder.Valid {
		order := int(displayOrder.Int64)
		p.DisplayOrder = &order
	}

	return &p, nil
}

// GetAll retrieves every project record, newest first
func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	log.Printf("🔍 Fetching all projects")

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error fetching projects: %v", err)
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			log.Printf("❌ Error scanning project row: %v", err)
			continue
		}
		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ Error iterating projects: %v", err)
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	log.Printf("✓ Successfully fetched %d projects", len(projects))
	return projects, nil
}

// GetByID retrieves a single project by its identifier. A miss is reported
// as sql.ErrNoRows so callers can distinguish it from a real failure.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	log.Printf("🔍 Fetching project by id: %s", id)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	row := db.DB.QueryRowContext(ctx, query, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", id, sql.ErrNoRows)
		}
		log.Printf("❌ Error fetching project %s: %v", id, err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	log.Printf("✓ Successfully fetched project: %s", id)
	return p, nil
}

// Insert inserts a new project record
func (r *ProjectRepository) Insert(ctx context.Context, project *models.Project) error {
	log.Printf("💾 Inserting project: %s (%s)", project.ID, project.Title)

	galleryJSON, err := json.Marshal(project.Gallery)
	if err != nil {
		return fmt.Errorf("failed to encode gallery: %w", err)
	}
	tagsJSON, err := json.Marshal(project.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO projects (
			id, title, description, long_description, category, industry,
			image_url, gallery, video_url, tags, client, display_date,
			created_at, display_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = db.DB.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.LongDescription,
		project.Category,
		project.Industry,
		project.ImageURL,
		galleryJSON,
		project.VideoURL,
		tagsJSON,
		project.Client,
		project.Date,
		project.CreatedAt,
		nullableOrder(project.DisplayOrder),
	)
	if err != nil {
		log.Printf("❌ Database INSERT error for project %s: %v", project.ID, err)
		return fmt.Errorf("failed to insert project: %w", err)
	}

	log.Printf("✅ Successfully inserted project: %s", project.ID)
	return nil
}

// Update updates all editable fields of a project by id
func (r *ProjectRepository) Update(ctx context.Context, id string, req *models.ProjectUpsertRequest) error {
	log.Printf("🔄 Updating project: id=%s, title=%s", id, req.Title)

	galleryJSON, err := json.Marshal(req.Gallery)
	if err != nil {
		return fmt.Errorf("failed to encode gallery: %w", err)
	}
	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		UPDATE projects
		SET title = $1,
		    description = $2,
		    long_description = $3,
		    category = $4,
		    industry = $5,
		    image_url = $6,
		    gallery = $7,
		    video_url = $8,
		    tags = $9,
		    client = $10,
		    display_date = $11,
		    display_order = $12
		WHERE id = $13
	`

	result, err := db.DB.ExecContext(ctx, query,
		req.Title,
		req.Description,
		req.LongDescription,
		req.Category,
		req.Industry,
		req.ImageURL,
		galleryJSON,
		req.VideoURL,
		tagsJSON,
		req.Client,
		req.Date,
		nullableOrder(req.DisplayOrder),
		id,
	)
	if err != nil {
		log.Printf("❌ Error updating project %s: %v", id, err)
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		log.Printf("⚠️  No rows updated for id: %s (record may not exist)", id)
		return fmt.Errorf("project with id %s not found", id)
	}

	log.Printf("✅ Successfully updated project: %s", id)
	return nil
}

// Delete removes a project record by id
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	log.Printf("🗑️  Deleting project: %s", id)

	result, err := db.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		log.Printf("❌ Error deleting project %s: %v", id, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("⚠️  Warning: Could not get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("project with id %s not found", id)
	}

	log.Printf("✅ Successfully deleted project: %s", id)
	return nil
}

// nullableOrder converts an optional display order into its SQL value.
// Absence must round-trip as NULL, never as zero.
func nullableOrder(order *int) interface{} {
	if order == nil {
		return nil
	}
	return *order
}
