package compressor

// Options is a partial record of conversion parameters. A nil pointer or an
// empty FileType means the field is absent. Values are not validated here;
// out-of-range quality or non-positive sizes go to the platform as-is.
type Options struct {
	Width   *float64
	Height  *float64
	Scale   *float64
	Quality *float64 // 0..1, platform default when nil
	// FileType is the output media type. Defaults to the source type.
	FileType string
}

// Float returns a pointer to v, for filling Options literals.
func Float(v float64) *float64 { return &v }

// Merge returns o with every absent field taken from base.
func (o Options) Merge(base Options) Options {
	if o.Width == nil {
		o.Width = base.Width
	}
	if o.Height == nil {
		o.Height = base.Height
	}
	if o.Scale == nil {
		o.Scale = base.Scale
	}
	if o.Quality == nil {
		o.Quality = base.Quality
	}
	if o.FileType == "" {
		o.FileType = base.FileType
	}
	return o
}

// Resolve computes the target size for an image of the given natural size.
//
// Scale defaults to 1 and only applies to an axis without an explicit size.
// Zero, negative and non-finite results are returned unchanged.
func Resolve(naturalWidth, naturalHeight int, opts Options) (width, height float64) {
	scale := 1.0
	if opts.Scale != nil {
		scale = *opts.Scale
	}

	width = float64(naturalWidth) * scale
	if opts.Width != nil {
		width = *opts.Width
	}
	height = float64(naturalHeight) * scale
	if opts.Height != nil {
		height = *opts.Height
	}
	return width, height
}
