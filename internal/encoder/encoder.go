package encoder

import (
	"image"
)

// DefaultQuality is used when a lossy encoder gets a quality outside 1-100.
const DefaultQuality = 92

// Encoder encodes an image to one media type.
type Encoder interface {
	// MediaType returns the produced media type (e.g. "image/jpeg").
	MediaType() string

	// Encode converts the image to bytes at the given quality (1-100).
	// Lossless encoders ignore quality.
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp, avifenc) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}

func normalizeQuality(q int) int {
	if q <= 0 || q > 100 {
		return DefaultQuality
	}
	return q
}
