// Package imageprep normalizes evidence images before they reach identity providers.
package imageprep

import (
	"context"
	"image"
	"path/filepath"
	"strings"

	"rentflow/config"
	"rentflow/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const jpegQuality = 90

type preprocessor struct {
	maxDimension int
}

// New returns a preprocessor that applies EXIF orientation and caps the longest side.
func New(cfg *config.Config) service.ImagePreprocessor {
	maxDimension := config.DefaultMaxImageDimension
	if cfg != nil && cfg.Identity != nil && cfg.Identity.MaxImageDimension > 0 {
		maxDimension = cfg.Identity.MaxImageDimension
	}

	return &preprocessor{maxDimension: maxDimension}
}

// Prepare writes a JPEG copy of src next to it and returns the copy's path
func (p *preprocessor) Prepare(ctx context.Context, src string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode image %s", src)
	}

	img = p.fit(img)

	dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".prepared.jpg"
	if err := imaging.Save(img, dst, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", errors.Wrapf(err, "failed to write prepared image %s", dst)
	}

	return dst, nil
}

func (p *preprocessor) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	if max(bounds.Dx(), bounds.Dy()) <= p.maxDimension {
		return img
	}

	return imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
}
