// Package platform implements the decode, raster and encode services of a
// compressor.Platform with pure-Go imaging libraries.
package platform

import (
	"fmt"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/AnyUserName/imgc-cli/internal/encoder"
	"github.com/AnyUserName/imgc-cli/internal/raster"
)

// Config selects the platform's pluggable parts.
type Config struct {
	// Resampler names a raster.Scaler; empty selects raster.DefaultScaler.
	Resampler string
	// Encoders overrides the encoder registry. Nil probes the built-ins.
	Encoders *encoder.Registry
}

// New assembles a compressor.Platform.
func New(cfg Config) (compressor.Platform, error) {
	scaler, err := raster.ScalerByName(cfg.Resampler)
	if err != nil {
		return compressor.Platform{}, fmt.Errorf("platform: %w", err)
	}
	reg := cfg.Encoders
	if reg == nil {
		reg = encoder.NewRegistry()
	}
	return compressor.Platform{
		Reader:     DataURLReader{},
		Decoder:    ImageDecoder{},
		Rasterizer: raster.NewCanvas(scaler),
		Encoder:    NewEncoder(reg),
	}, nil
}
