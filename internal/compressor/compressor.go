// Package compressor resizes and re-encodes a single image.
//
// A Compressor is bound to one source File and one Options record. Each
// accessor runs the whole pipeline from the source (read, decode, resolve
// target size, draw, encode) and shares nothing with sibling calls, so the
// accessors may be called concurrently.
package compressor

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compressor converts one source File according to Options.
type Compressor struct {
	platform Platform
	file     *File
	opts     Options
	log      *zap.Logger
}

// New binds a conversion request to the platform services that execute it.
func New(p Platform, file *File, opts Options) *Compressor {
	return &Compressor{
		platform: p,
		file:     file,
		opts:     opts,
		log:      zap.NewNop(),
	}
}

// WithLogger returns a copy of c that logs pipeline stages to l.
func (c *Compressor) WithLogger(l *zap.Logger) *Compressor {
	cp := *c
	cp.log = l
	return &cp
}

// File returns the source file.
func (c *Compressor) File() *File { return c.file }

// Options returns the conversion options.
func (c *Compressor) Options() Options { return c.opts }

// Base64 returns the original source as a data URI.
func (c *Compressor) Base64() (string, error) {
	return c.readSource(c.begin("base64"))
}

// Image decodes the original source into a drawable handle.
func (c *Compressor) Image() (*Image, error) {
	return c.loadSource(c.begin("image"))
}

// ChangedBase64 returns the resized, re-encoded image as a data URI.
func (c *Compressor) ChangedBase64() (string, error) {
	return c.changedBase64(c.begin("changed_base64"))
}

// ChangedImage decodes the resized, re-encoded image into a drawable handle.
func (c *Compressor) ChangedImage() (*Image, error) {
	log := c.begin("changed_image")
	src, err := c.changedBase64(log)
	if err != nil {
		return nil, err
	}
	img, err := c.platform.Decoder.Decode(src)
	if err != nil {
		log.Debug("decode result failed", zap.Error(err))
		return nil, &DecodeError{Err: err}
	}
	return img, nil
}

// ChangedFile returns the resized, re-encoded image as a File named after
// the source. Its Type is the media type the encoder actually produced,
// which differs from the requested type when the encoder falls back.
func (c *Compressor) ChangedFile() (*File, error) {
	log := c.begin("changed_file")
	s, err := c.draw(log)
	if err != nil {
		return nil, err
	}

	mediaType, quality := c.encodeParams()
	data, produced, err := c.platform.Encoder.EncodeBlob(s.Image(), mediaType, quality)
	if err != nil {
		log.Debug("encode failed", zap.String("type", mediaType), zap.Error(err))
		return nil, &EncodeError{Format: mediaType, Err: err}
	}
	log.Debug("encoded",
		zap.String("requested", mediaType),
		zap.String("produced", produced),
		zap.Int("bytes", len(data)),
	)
	return &File{Name: c.file.Name, Type: produced, Data: data}, nil
}

func (c *Compressor) begin(op string) *zap.Logger {
	return c.log.With(zap.String("op", op), zap.String("call", uuid.NewString()))
}

func (c *Compressor) readSource(log *zap.Logger) (string, error) {
	src, err := c.platform.Reader.ReadAsDataURL(c.file)
	if err != nil {
		log.Debug("read source failed", zap.String("name", c.file.Name), zap.Error(err))
		return "", &DecodeError{Err: err}
	}
	return src, nil
}

func (c *Compressor) loadSource(log *zap.Logger) (*Image, error) {
	src, err := c.readSource(log)
	if err != nil {
		return nil, err
	}
	img, err := c.platform.Decoder.Decode(src)
	if err != nil {
		log.Debug("decode source failed", zap.String("name", c.file.Name), zap.Error(err))
		return nil, &DecodeError{Err: err}
	}
	log.Debug("decoded source",
		zap.String("name", c.file.Name),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
	)
	return img, nil
}

// draw loads the source and paints it, stretched, onto a fresh surface of
// the resolved size.
func (c *Compressor) draw(log *zap.Logger) (Surface, error) {
	img, err := c.loadSource(log)
	if err != nil {
		return nil, err
	}

	w, h := Resolve(img.Width, img.Height, c.opts)
	s, err := c.platform.Rasterizer.NewSurface(w, h)
	if err != nil {
		log.Debug("allocate surface failed", zap.Float64("width", w), zap.Float64("height", h), zap.Error(err))
		return nil, &RasterError{Width: w, Height: h, Err: err}
	}

	s.Clear()
	if err := s.DrawImage(img.Pixels(), s.Bounds()); err != nil {
		return nil, &RasterError{Width: w, Height: h, Err: err}
	}
	log.Debug("drew surface", zap.Int("width", s.Bounds().Dx()), zap.Int("height", s.Bounds().Dy()))
	return s, nil
}

func (c *Compressor) changedBase64(log *zap.Logger) (string, error) {
	s, err := c.draw(log)
	if err != nil {
		return "", err
	}

	mediaType, quality := c.encodeParams()
	out, err := c.platform.Encoder.EncodeDataURL(s.Image(), mediaType, quality)
	if err != nil {
		log.Debug("encode failed", zap.String("type", mediaType), zap.Error(err))
		return "", &EncodeError{Format: mediaType, Err: err}
	}
	return out, nil
}

// encodeParams returns the requested output type, defaulting to the source
// type, and the quality exactly as given.
func (c *Compressor) encodeParams() (string, *float64) {
	mediaType := c.opts.FileType
	if mediaType == "" {
		mediaType = c.file.Type
	}
	return mediaType, c.opts.Quality
}
