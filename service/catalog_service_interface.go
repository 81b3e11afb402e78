package service

import (
	"context"

	"estudio-luma-me/models"
)

// CatalogServiceInterface defines the contract for merged catalog views
// and deep-link resolution
type CatalogServiceInterface interface {
	Combined(ctx context.Context) []models.CatalogItem
	Latest(ctx context.Context, n int) []models.CatalogItem
	LogoGallery(ctx context.Context) []models.CatalogItem
	Resolve(ctx context.Context, id string) (*models.CatalogItem, error)
	ClearCache()
}
