package encoder

import (
	"fmt"
	"mime"
	"strings"
)

// FallbackType is produced whenever the requested type has no encoder.
const FallbackType = "image/png"

// Registry holds all available encoders keyed by media type.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all built-in encoders for
// availability.
func NewRegistry() *Registry {
	return NewRegistryWith(
		NewAVIFEncoder(),
		NewWebPEncoder(),
		&JPEGEncoder{},
		&PNGEncoder{},
		&GIFEncoder{},
		&BMPEncoder{},
		&TIFFEncoder{},
	)
}

// NewRegistryWith registers the given encoders. Unavailable ones are
// skipped. A PNG encoder is always present.
func NewRegistryWith(all ...Encoder) *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.MediaType()] = enc
		}
	}
	if _, ok := r.encoders[FallbackType]; !ok {
		r.encoders[FallbackType] = &PNGEncoder{}
	}
	return r
}

// Get returns the encoder for mediaType, or nil if unavailable.
func (r *Registry) Get(mediaType string) Encoder {
	return r.encoders[Normalize(mediaType)]
}

// Resolve returns the encoder for mediaType, falling back to PNG.
func (r *Registry) Resolve(mediaType string) Encoder {
	if enc := r.Get(mediaType); enc != nil {
		return enc
	}
	return r.encoders[FallbackType]
}

// Available returns all available media types in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, t := range []string{"image/avif", "image/webp", "image/jpeg", "image/png", "image/gif", "image/bmp", "image/tiff"} {
		if _, ok := r.encoders[t]; ok {
			result = append(result, t)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	return fmt.Sprintf("encoders: %s", strings.Join(r.Available(), ", "))
}

// Normalize lowercases a media type, drops parameters and maps common
// aliases ("jpg", "image/jpg") to their canonical form.
func Normalize(mediaType string) string {
	t := strings.ToLower(strings.TrimSpace(mediaType))
	if parsed, _, err := mime.ParseMediaType(t); err == nil {
		t = parsed
	}
	if !strings.Contains(t, "/") && t != "" {
		t = "image/" + t
	}
	switch t {
	case "image/jpg", "image/pjpeg":
		return "image/jpeg"
	case "image/tif":
		return "image/tiff"
	case "image/x-ms-bmp":
		return "image/bmp"
	}
	return t
}
