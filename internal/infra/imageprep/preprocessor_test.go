package imageprep

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"rentflow/config"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, w, h int) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, imaging.Save(imaging.New(w, h, color.White), p))

	return p
}

func TestPreprocessor_DownsizesLargeImages(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Identity: &config.IdentityConfig{MaxImageDimension: 400}}
	src := writeImage(t, "front.png", 1200, 800)

	dst, err := New(cfg).Prepare(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(src), "front.prepared.jpg"), dst)

	out, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(400, 267), out.Bounds().Size())
}

func TestPreprocessor_KeepsSmallImages(t *testing.T) {
	t.Parallel()

	src := writeImage(t, "selfie.jpg", 300, 200)

	dst, err := New(nil).Prepare(context.Background(), src)
	require.NoError(t, err)
	assert.NotEqual(t, src, dst)

	out, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(300, 200), out.Bounds().Size())
}

func TestPreprocessor_RejectsNonImages(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "notes.jpg")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o600))

	_, err := New(nil).Prepare(context.Background(), src)
	assert.Error(t, err)
}

func TestPreprocessor_HonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Prepare(ctx, writeImage(t, "back.png", 10, 10))
	assert.ErrorIs(t, err, context.Canceled)
}
