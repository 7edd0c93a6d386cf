// Package image normalizes uploaded product images.
package image

import (
	"bytes"
	stdimage "image"
	"image/jpeg"
	_ "image/png" // register png decoder
	"io"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/nfnt/resize"
)

const (
	defaultMaxWidth = 800
	defaultQuality  = 80
)

type jpegProcessor struct {
	maxWidth uint
	quality  int
}

// NewProcessor builds the processor from catalog configuration.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	p := &jpegProcessor{maxWidth: defaultMaxWidth, quality: defaultQuality}
	if cfg == nil {
		return p
	}
	if cfg.Catalog.ImageMaxWidth > 0 {
		p.maxWidth = cfg.Catalog.ImageMaxWidth
	}
	if cfg.Catalog.ImageQuality > 0 && cfg.Catalog.ImageQuality <= 100 {
		p.quality = cfg.Catalog.ImageQuality
	}

	return p
}

// Normalize decodes a png or jpeg, shrinks it to maxWidth keeping the aspect ratio and re-encodes it as JPEG.
func (p *jpegProcessor) Normalize(r io.Reader) ([]byte, error) {
	img, format, err := stdimage.Decode(r)
	if err != nil {
		return nil, errors.Wrap(service.ErrUnsupportedImage, err.Error())
	}
	if format != "png" && format != "jpeg" {
		return nil, errors.Wrapf(service.ErrUnsupportedImage, "format %s", format)
	}

	if uint(img.Bounds().Dx()) > p.maxWidth {
		img = resize.Resize(p.maxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, errors.Wrap(err, "failed to encode jpeg")
	}

	return buf.Bytes(), nil
}
