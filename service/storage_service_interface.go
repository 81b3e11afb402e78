package service

import "context"

// StorageServiceInterface defines the contract for the object storage
// backend
type StorageServiceInterface interface {
	Upload(ctx context.Context, name string, data []byte, mimeType string) (string, error)
	ListImages(ctx context.Context) ([]StoredImage, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	Replace(ctx context.Context, fileID string, data []byte, mimeType string) error
}
