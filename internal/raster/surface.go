package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"golang.org/x/image/draw"
)

// Allocation limits, in line with common browser canvas caps.
const (
	MaxSide = 32767
	MaxArea = 268435456
)

// ErrInvalidSurface is returned for sizes that cannot be allocated.
var ErrInvalidSurface = errors.New("invalid surface size")

// Canvas allocates NRGBA surfaces drawn with a Scaler.
type Canvas struct {
	scaler Scaler
}

// NewCanvas returns a rasterizer drawing with s.
func NewCanvas(s Scaler) *Canvas {
	return &Canvas{scaler: s}
}

// NewSurface truncates width and height toward zero and allocates a
// transparent surface of that size.
func (c *Canvas) NewSurface(width, height float64) (compressor.Surface, error) {
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidSurface, width, height)
	}
	w, h := int64(width), int64(height)
	if w <= 0 || h <= 0 || w > MaxSide || h > MaxSide || w*h > MaxArea {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, w, h)
	}
	return &Surface{
		img:    image.NewNRGBA(image.Rect(0, 0, int(w), int(h))),
		scaler: c.scaler,
	}, nil
}

// Surface is an in-memory drawing target.
type Surface struct {
	img    *image.NRGBA
	scaler Scaler
}

func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// DrawImage stretches src over dst, compositing source-over. Parts of dst
// outside the surface are clipped.
func (s *Surface) DrawImage(src image.Image, dst image.Rectangle) error {
	if src == nil {
		return errors.New("draw: nil source")
	}
	if dst.Empty() {
		return nil
	}
	if src.Bounds().Empty() {
		return fmt.Errorf("draw: empty source %v", src.Bounds())
	}

	scaled := s.scaler.Scale(src, dst.Dx(), dst.Dy())
	draw.Draw(s.img, dst, scaled, scaled.Bounds().Min, draw.Over)
	return nil
}

func (s *Surface) Image() image.Image { return s.img }
