package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage is an in-memory StorageServiceInterface.
type fakeStorage struct {
	images   []StoredImage
	files    map[string][]byte
	replaced map[string][]byte
	listErr  error
}

var _ StorageServiceInterface = (*fakeStorage)(nil)

func (f *fakeStorage) Upload(ctx context.Context, name string, data []byte, mimeType string) (string, error) {
	return "https://storage.example/" + name, nil
}

func (f *fakeStorage) ListImages(ctx context.Context) ([]StoredImage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.images, nil
}

func (f *fakeStorage) Download(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.files[fileID]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (f *fakeStorage) Replace(ctx context.Context, fileID string, data []byte, mimeType string) error {
	if f.replaced == nil {
		f.replaced = map[string][]byte{}
	}
	f.replaced[fileID] = data
	return nil
}

// noisyPNG builds a PNG that compresses poorly, so the JPEG re-encode is
// guaranteed to shrink it.
func noisyPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	seed := uint32(2463534242)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			img.Set(x, y, color.RGBA{R: uint8(seed), G: uint8(seed >> 8), B: uint8(seed >> 16), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestReencodeAllReplacesShrinkableImages(t *testing.T) {
	storage := &fakeStorage{
		images: []StoredImage{{FileID: "big", Name: "big.png", MimeType: "image/png"}},
		files:  map[string][]byte{"big": noisyPNG(t, 600, 400)},
	}
	svc := NewReencodeService(storage)

	stats, err := svc.ReencodeAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Reencoded)
	assert.Empty(t, stats.Errors)
	require.Contains(t, storage.replaced, "big")
	assert.Less(t, len(storage.replaced["big"]), len(storage.files["big"]))
}

func TestReencodeAllRecordsFailuresAndContinues(t *testing.T) {
	storage := &fakeStorage{
		images: []StoredImage{
			{FileID: "broken", Name: "broken.png", MimeType: "image/png"},
			{FileID: "good", Name: "good.png", MimeType: "image/png"},
		},
		files: map[string][]byte{
			"broken": []byte("not an image"),
			"good":   noisyPNG(t, 400, 300),
		},
	}
	svc := NewReencodeService(storage)

	stats, err := svc.ReencodeAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Reencoded)
	assert.Len(t, stats.Errors, 1)
	assert.NotContains(t, storage.replaced, "broken")
}

func TestReencodeAllFailsWhenListingFails(t *testing.T) {
	storage := &fakeStorage{listErr: errors.New("storage unreachable")}
	svc := NewReencodeService(storage)

	_, err := svc.ReencodeAll(context.Background())
	assert.Error(t, err)
}
