package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// StoredImage is one image object living in the storage folder.
type StoredImage struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	ImageURL string `json:"imageUrl"`
}

// StorageService handles object storage on Google Drive: site imagery and
// portfolio images are uploaded to a single shared folder and served
// through public URLs. Implements StorageServiceInterface
type StorageService struct {
	client   *drive.Service
	folderID string
}

// NewStorageService creates a new StorageService instance.
// credentialsPath is the Service Account JSON file; folderID is the shared
// folder all uploads land in.
func NewStorageService(credentialsPath, folderID string) (*StorageService, error) {
	ctx := context.Background()

	client, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &StorageService{client: client, folderID: folderID}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// publicURL builds the public serving URL for a stored file.
func publicURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", fileID)
}

// Upload stores image bytes under the given name and returns the public
// URL. The file is made world-readable so the brochure site can embed it
// directly.
func (s *StorageService) Upload(ctx context.Context, name string, data []byte, mimeType string) (string, error) {
	log.Printf("📤 Uploading %s (%d bytes) to storage folder", name, len(data))

	file := &drive.File{
		Name:     name,
		Parents:  []string{s.folderID},
		MimeType: mimeType,
	}

	created, err := s.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Fields("id").
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}

	permission := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := s.client.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("failed to publish %s: %w", name, err)
	}

	url := publicURL(created.Id)
	log.Printf("✅ Uploaded %s: %s", name, url)
	return url, nil
}

// ListImages lists all image files in the storage folder.
func (s *StorageService) ListImages(ctx context.Context) ([]StoredImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", s.folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := s.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list storage folder: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
		"image/webp": true,
	}

	var images []StoredImage
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}
		images = append(images, StoredImage{
			FileID:   file.Id,
			Name:     file.Name,
			MimeType: file.MimeType,
			ImageURL: publicURL(file.Id),
		})
	}

	log.Printf("✓ Listed %d images in storage folder", len(images))
	return images, nil
}

// Download fetches the raw bytes of a stored file.
func (s *StorageService) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := s.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}

// Replace overwrites the content of an existing stored file, keeping its
// id (and therefore its public URL) stable.
func (s *StorageService) Replace(ctx context.Context, fileID string, data []byte, mimeType string) error {
	log.Printf("🔄 Replacing content of stored file %s (%d bytes)", fileID, len(data))

	_, err := s.client.Files.Update(fileID, &drive.File{MimeType: mimeType}).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to replace file %s: %w", fileID, err)
	}
	return nil
}
