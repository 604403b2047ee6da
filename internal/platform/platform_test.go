package platform

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/AnyUserName/imgc-cli/internal/encoder"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestReadAsDataURL(t *testing.T) {
	tests := []struct {
		name, mediaType, prefix string
	}{
		{"declared", "image/png", "data:image/png;base64,"},
		{"empty", "", "data:application/octet-stream;base64,"},
		{"garbage", "not a type", "data:application/octet-stream;base64,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataURLReader{}.ReadAsDataURL(&compressor.File{Type: tt.mediaType, Data: []byte("abc")})
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("got %q, want prefix %q", got, tt.prefix)
			}
			if !strings.HasSuffix(got, "YWJj") {
				t.Errorf("payload: got %q", got)
			}
		})
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	data := pngBytes(t, 3, 3)
	data2, mediaType, err := DecodeDataURL(EncodeDataURL(data, "image/png"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("media type: got %q", mediaType)
	}
	if !bytes.Equal(data, data2) {
		t.Error("payload changed")
	}
}

func TestImageDecoder(t *testing.T) {
	img, err := ImageDecoder{}.Decode(EncodeDataURL(pngBytes(t, 12, 5), "image/png"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Width != 12 || img.Height != 5 {
		t.Errorf("size: got %dx%d", img.Width, img.Height)
	}

	// Content wins over the declared type.
	if _, err := (ImageDecoder{}).Decode(EncodeDataURL(pngBytes(t, 2, 2), "image/jpeg")); err != nil {
		t.Errorf("mislabelled png: %v", err)
	}

	if _, err := (ImageDecoder{}).Decode(EncodeDataURL([]byte("plain text"), "text/plain")); err == nil {
		t.Error("expected error for non-image payload")
	}
	if _, err := (ImageDecoder{}).Decode("not a data url"); err == nil {
		t.Error("expected error for malformed data url")
	}
}

func TestEncoderReportsFallbackType(t *testing.T) {
	e := NewEncoder(encoder.NewRegistryWith(&encoder.JPEGEncoder{}))
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	_, produced, err := e.EncodeBlob(img, "image/x-unknown", nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if produced != "image/png" {
		t.Errorf("produced: got %q", produced)
	}

	s, err := e.EncodeDataURL(img, "image/jpeg", compressor.Float(0.5))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(s, "data:image/jpeg;base64,") {
		t.Errorf("data url: got %q", s[:32])
	}
}

func TestQualityPercent(t *testing.T) {
	tests := []struct {
		in   *float64
		want int
	}{
		{nil, 92},
		{compressor.Float(0.5), 50},
		{compressor.Float(1), 100},
		{compressor.Float(0), 1},
		{compressor.Float(1.5), 92},
		{compressor.Float(-0.1), 92},
	}
	for _, tt := range tests {
		if got := qualityPercent(tt.in); got != tt.want {
			t.Errorf("qualityPercent(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewRejectsUnknownResampler(t *testing.T) {
	if _, err := New(Config{Resampler: "nope"}); err == nil {
		t.Error("expected error")
	}
	if _, err := New(Config{Resampler: "catmullrom"}); err != nil {
		t.Errorf("catmullrom: %v", err)
	}
}
