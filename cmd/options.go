package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/AnyUserName/imgc-cli/internal/encoder"
	"github.com/AnyUserName/imgc-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	optWidth   float64
	optHeight  float64
	optScale   float64
	optQuality float64
	optType    string
	optPreset  string
)

// addOptionFlags registers the conversion option flags on c. Only flags
// the user actually sets end up in the Options record.
func addOptionFlags(c *cobra.Command) {
	c.Flags().Float64VarP(&optWidth, "width", "W", 0, "target width in pixels (overrides --scale for width)")
	c.Flags().Float64VarP(&optHeight, "height", "H", 0, "target height in pixels (overrides --scale for height)")
	c.Flags().Float64VarP(&optScale, "scale", "s", 1, "scale factor for dimensions not set explicitly")
	c.Flags().Float64VarP(&optQuality, "quality", "q", 0, "encoder quality 0-1 (default: encoder's own)")
	c.Flags().StringVarP(&optType, "type", "t", "", "output media type or extension, e.g. image/webp or jpg (default: source type)")
	c.Flags().StringVarP(&optPreset, "preset", "p", "", `option preset (see "imgc presets")`)
}

// optionsFromFlags builds Options from the flags set on c, merged over the
// selected or configured preset.
func optionsFromFlags(c *cobra.Command) (compressor.Options, error) {
	var opts compressor.Options
	f := c.Flags()
	if f.Changed("width") {
		opts.Width = compressor.Float(optWidth)
	}
	if f.Changed("height") {
		opts.Height = compressor.Float(optHeight)
	}
	if f.Changed("scale") {
		opts.Scale = compressor.Float(optScale)
	}
	if f.Changed("quality") {
		opts.Quality = compressor.Float(optQuality)
	}
	if optType != "" {
		opts.FileType = encoder.Normalize(optType)
	}

	preset := optPreset
	if preset == "" && cfg != nil {
		preset = cfg.DefaultPreset
	}
	opts, err := profile.Apply(preset, opts)
	if err != nil {
		return compressor.Options{}, fmt.Errorf("preset: %w", err)
	}
	return opts, nil
}

// hasOptionFlags reports whether any conversion option was given.
func hasOptionFlags(c *cobra.Command) bool {
	for _, name := range []string{"width", "height", "scale", "quality", "type", "preset"} {
		if c.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// newCompressor opens path and binds it to opts on the configured platform.
func newCompressor(path string, opts compressor.Options) (*compressor.Compressor, error) {
	f, err := compressor.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return compressor.New(plat, f, opts).WithLogger(log), nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
