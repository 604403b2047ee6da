package compressor

import "image"

// Image is a drawable handle: a decoded picture together with the data URI
// it was decoded from.
type Image struct {
	// Src is the data URI the image was loaded from.
	Src string
	// Width and Height are the natural pixel dimensions.
	Width  int
	Height int

	pixels image.Image
}

// NewImage wraps decoded pixels loaded from src.
func NewImage(src string, pixels image.Image) *Image {
	b := pixels.Bounds()
	return &Image{
		Src:    src,
		Width:  b.Dx(),
		Height: b.Dy(),
		pixels: pixels,
	}
}

// Pixels returns the decoded image.
func (i *Image) Pixels() image.Image { return i.pixels }
