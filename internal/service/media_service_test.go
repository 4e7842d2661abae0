package service

import (
	"GrowAGram/internal/api/dto"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newMediaFixture() (*MediaServiceImpl, *stubStore, *stubMedia) {
	store := newStubStore()
	registry := newStubMedia()
	svc := NewMediaService(store, registry, 0).(*MediaServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC) }
	return svc, store, registry
}

func TestUploadImageData(t *testing.T) {
	svc, store, registry := newMediaFixture()

	res, err := svc.UploadImageData(context.Background(), pngBytes(t, 64, 32))
	require.NoError(t, err)
	assert.Regexp(t, `^2024/05/06/[0-9a-f-]{36}\.png$`, res.ImageID)
	assert.Equal(t, "image/png", res.Mime)
	assert.Equal(t, 64, res.Width)
	assert.Equal(t, 32, res.Height)
	assert.Equal(t, "http://cdn.test/"+res.ImageID, res.URL)
	assert.NotEmpty(t, res.ThumbnailURL)

	assert.Contains(t, store.objects, res.ImageID)
	assert.Contains(t, store.objects, thumbnailKey(res.ImageID))
	meta := registry.temp[res.ImageID]
	require.NotNil(t, meta)
	assert.Equal(t, time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC).Unix(), meta.CreatedAt)
}

func TestUploadImageRejects(t *testing.T) {
	svc, store, _ := newMediaFixture()
	ctx := context.Background()

	_, err := svc.UploadImageData(ctx, []byte("plain text, not an image"))
	assert.ErrorIs(t, err, ErrFileNotSupported)

	svc.maxBytes = 16
	_, err = svc.UploadImageData(ctx, pngBytes(t, 8, 8))
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, store.objects)
}

func TestCleanupExpired(t *testing.T) {
	svc, _, registry := newMediaFixture()
	ctx := context.Background()

	fresh, err := svc.UploadImageData(ctx, pngBytes(t, 4, 4))
	require.NoError(t, err)
	registry.temp["old.png"] = &dto.MediaTempMetadata{
		MimeType:  "image/png",
		CreatedAt: svc.now().Add(-48 * time.Hour).Unix(),
	}

	removed, err := svc.CleanupExpired(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"old.png"}, registry.discarded)
	assert.Contains(t, registry.temp, fresh.ImageID)
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "2024/01/02/abc_thumb.jpg", thumbnailKey("2024/01/02/abc.png"))
	assert.Equal(t, "abc_thumb.jpg", thumbnailKey("abc"))
}
