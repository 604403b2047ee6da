package platform

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/AnyUserName/imgc-cli/internal/compressor"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageDecoder decodes data URIs with the registered image formats. The
// format is sniffed from content; the declared media type is ignored.
type ImageDecoder struct{}

func (ImageDecoder) Decode(src string) (*compressor.Image, error) {
	data, _, err := DecodeDataURL(src)
	if err != nil {
		return nil, fmt.Errorf("parse data url: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return compressor.NewImage(src, img), nil
}
