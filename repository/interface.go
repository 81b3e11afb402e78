package repository

import (
	"context"

	"estudio-luma-me/models"
)

// ProjectRepositoryInterface defines the contract for current-schema
// project records.
type ProjectRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Insert(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, id string, req *models.ProjectUpsertRequest) error
	Delete(ctx context.Context, id string) error
}

// LogoRepositoryInterface defines the contract for legacy-schema logo
// records.
type LogoRepositoryInterface interface {
	GetAll(ctx context.Context) ([]models.Logo, error)
	GetByID(ctx context.Context, id string) (*models.Logo, error)
	Insert(ctx context.Context, logo *models.Logo) error
	Update(ctx context.Context, id string, req *models.LogoUpsertRequest) error
	Delete(ctx context.Context, id string) error
}

// SiteRepositoryInterface defines the contract for site imagery and styling
// configuration.
type SiteRepositoryInterface interface {
	GetImages(ctx context.Context) ([]models.SiteImage, error)
	UpsertImage(ctx context.Context, req *models.SiteImageUpsertRequest) error
	DeleteImage(ctx context.Context, key string) error
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *models.SiteSettings) error
}

// AuthRepositoryInterface defines the contract for admin users and their
// sessions.
type AuthRepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	InsertSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
