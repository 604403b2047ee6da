package compressor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// File is a named, typed blob. It is both the conversion source and the
// file-like result of ChangedFile.
type File struct {
	// Name is the base file name, e.g. "banner.jpg".
	Name string
	// Type is the declared media type, e.g. "image/jpeg". May be empty.
	Type string
	// Data holds the raw bytes.
	Data []byte
}

// Size returns the blob length in bytes.
func (f *File) Size() int64 { return int64(len(f.Data)) }

// OpenFile reads path into a File. The media type is sniffed from content,
// since files on disk carry no declared type.
func OpenFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &File{
		Name: filepath.Base(path),
		Type: mimetype.Detect(data).String(),
		Data: data,
	}, nil
}
