package platform

import (
	"image"
	"math"

	"github.com/AnyUserName/imgc-cli/internal/encoder"
)

// DefaultQuality is the fraction used when quality is absent or outside
// [0, 1].
const DefaultQuality = 0.92

// Encoder adapts an encoder.Registry to compressor.Encoder. Unknown or
// unavailable media types are encoded as PNG.
type Encoder struct {
	reg *encoder.Registry
}

func NewEncoder(reg *encoder.Registry) *Encoder {
	return &Encoder{reg: reg}
}

func (e *Encoder) EncodeDataURL(img image.Image, mediaType string, quality *float64) (string, error) {
	data, produced, err := e.EncodeBlob(img, mediaType, quality)
	if err != nil {
		return "", err
	}
	return EncodeDataURL(data, produced), nil
}

func (e *Encoder) EncodeBlob(img image.Image, mediaType string, quality *float64) ([]byte, string, error) {
	enc := e.reg.Resolve(mediaType)
	data, err := enc.Encode(img, qualityPercent(quality))
	if err != nil {
		return nil, "", err
	}
	return data, enc.MediaType(), nil
}

// qualityPercent maps a 0..1 fraction to the encoders' 1-100 scale.
func qualityPercent(q *float64) int {
	f := DefaultQuality
	if q != nil && *q >= 0 && *q <= 1 {
		f = *q
	}
	return max(1, int(math.Round(f*100)))
}
