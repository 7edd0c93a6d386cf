package service

import (
	"io"

	"storefront/internal/errors"
)

// ErrUnsupportedImage is returned for uploads that are not png or jpeg.
var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageProcessor normalizes uploaded product images.
type ImageProcessor interface {
	// Normalize decodes r, scales it down to the configured width and re-encodes it as JPEG.
	Normalize(r io.Reader) ([]byte, error)
}
