package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// allowed upload extensions, lowercase
var allowedImageExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// SanitizeFileName normalizes an uploaded file name into a safe object
// name: path stripped, lowercased, spaces and unsafe characters collapsed
// to hyphens.
func SanitizeFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = strings.ToLower(base)
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "image"
	}
	return base
}

// ImageMimeType returns the MIME type for an uploaded image file name, or
// an error when the extension is not an accepted image format.
func ImageMimeType(name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	mimeType, ok := allowedImageExts[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	return mimeType, nil
}
