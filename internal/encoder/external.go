package encoder

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// tool is an encoder binary found on PATH. The source is handed over as a
// temporary PNG since both cwebp and avifenc read files.
type tool struct {
	name string
	once sync.Once
	path string
}

func (t *tool) lookup() string {
	t.once.Do(func() {
		if p, err := exec.LookPath(t.name); err == nil {
			t.path = p
		}
	})
	return t.path
}

// run writes img to a temp PNG, invokes the tool with args built from the
// source and destination paths, and returns the destination bytes.
func (t *tool) run(img image.Image, ext string, args func(src, dst string) []string) ([]byte, error) {
	bin := t.lookup()
	if bin == "" {
		return nil, fmt.Errorf("%s not found in PATH", t.name)
	}

	dir, err := os.MkdirTemp("", "imgc_"+t.name+"_*")
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "src.png")
	dstPath := filepath.Join(dir, "dst."+ext)

	f, err := os.Create(srcPath)
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close temp png: %w", err)
	}

	cmd := exec.Command(bin, args(srcPath, dstPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", t.name, err, string(out))
	}
	return os.ReadFile(dstPath)
}

// WebPEncoder encodes images to WebP by shelling out to cwebp.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	cwebp tool
}

func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{cwebp: tool{name: "cwebp"}}
}

func (e *WebPEncoder) MediaType() string { return "image/webp" }
func (e *WebPEncoder) Extension() string { return "webp" }
func (e *WebPEncoder) Available() bool   { return e.cwebp.lookup() != "" }

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	q := normalizeQuality(quality)
	return e.cwebp.run(img, "webp", func(src, dst string) []string {
		return []string{
			"-q", fmt.Sprintf("%d", q),
			"-m", "6", // compression method (0=fast, 6=best)
			"-quiet",
			src,
			"-o", dst,
		}
	})
}

// AVIFEncoder encodes images to AVIF by shelling out to avifenc.
// Install: brew install libavif / apt install libavif-bin
type AVIFEncoder struct {
	avifenc tool
}

func NewAVIFEncoder() *AVIFEncoder {
	return &AVIFEncoder{avifenc: tool{name: "avifenc"}}
}

func (e *AVIFEncoder) MediaType() string { return "image/avif" }
func (e *AVIFEncoder) Extension() string { return "avif" }
func (e *AVIFEncoder) Available() bool   { return e.avifenc.lookup() != "" }

func (e *AVIFEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	// avifenc quantizer: lower = better, 0-63.
	avifQ := 63 - (normalizeQuality(quality) * 63 / 100)
	return e.avifenc.run(img, "avif", func(src, dst string) []string {
		return []string{
			"--min", fmt.Sprintf("%d", avifQ),
			"--max", fmt.Sprintf("%d", avifQ),
			"--speed", "6",
			src,
			dst,
		}
	})
}
