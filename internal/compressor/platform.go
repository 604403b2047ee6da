package compressor

import "image"

// Reader reads a blob into a data URI.
type Reader interface {
	ReadAsDataURL(f *File) (string, error)
}

// Decoder decodes a data URI into a drawable image.
type Decoder interface {
	Decode(src string) (*Image, error)
}

// Surface is an offscreen drawing target.
type Surface interface {
	// Bounds is the full surface rectangle, anchored at (0, 0).
	Bounds() image.Rectangle
	// Clear resets every pixel to transparent black.
	Clear()
	// DrawImage scales src to fill dst, ignoring aspect ratio.
	DrawImage(src image.Image, dst image.Rectangle) error
	// Image exposes the surface pixels for encoding.
	Image() image.Image
}

// Rasterizer allocates offscreen surfaces. Sizes are truncated toward zero;
// implementations reject sizes they cannot allocate.
type Rasterizer interface {
	NewSurface(width, height float64) (Surface, error)
}

// Encoder serializes pixels. mediaType is a request: the encoder may fall
// back to another format, and EncodeBlob reports the type it produced.
type Encoder interface {
	EncodeDataURL(img image.Image, mediaType string, quality *float64) (string, error)
	EncodeBlob(img image.Image, mediaType string, quality *float64) (data []byte, producedType string, err error)
}

// Platform bundles the decode, raster and encode services the pipeline
// calls into.
type Platform struct {
	Reader     Reader
	Decoder    Decoder
	Rasterizer Rasterizer
	Encoder    Encoder
}
