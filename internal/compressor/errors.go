package compressor

import "fmt"

// DecodeError reports that a source could not be read or decoded. Err is
// the reader's or decoder's own error.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an encoder failure for the requested format.
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}
func (e *EncodeError) Unwrap() error { return e.Err }

// RasterError reports that a surface could not be allocated or drawn.
type RasterError struct {
	Width, Height float64
	Err           error
}

func (e *RasterError) Error() string {
	return fmt.Sprintf("raster %gx%g: %v", e.Width, e.Height, e.Err)
}
func (e *RasterError) Unwrap() error { return e.Err }
