// Package raster provides offscreen surfaces and the resampling filters
// used to draw images onto them.
package raster

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Scaler resamples src to exactly w×h pixels, ignoring aspect ratio.
type Scaler interface {
	Scale(src image.Image, w, h int) image.Image
}

// Imaging scales with a disintegration/imaging resample filter.
type Imaging struct {
	Filter imaging.ResampleFilter
}

func (s Imaging) Scale(src image.Image, w, h int) image.Image {
	return imaging.Resize(src, w, h, s.Filter)
}

// XDraw scales with a golang.org/x/image/draw interpolator.
type XDraw struct {
	Interpolator draw.Interpolator
}

func (s XDraw) Scale(src image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	s.Interpolator.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// NFNT scales with github.com/nfnt/resize.
type NFNT struct {
	Interp resize.InterpolationFunction
}

func (s NFNT) Scale(src image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), src, s.Interp)
}

// DefaultScaler is the name used when none is configured.
const DefaultScaler = "lanczos"

var scalers = map[string]Scaler{
	"lanczos":       Imaging{Filter: imaging.Lanczos},
	"linear":        Imaging{Filter: imaging.Linear},
	"catmullrom":    XDraw{Interpolator: draw.CatmullRom},
	"bilinear":      XDraw{Interpolator: draw.ApproxBiLinear},
	"nearest":       XDraw{Interpolator: draw.NearestNeighbor},
	"nfnt-lanczos3": NFNT{Interp: resize.Lanczos3},
}

// ScalerByName returns a registered scaler.
func ScalerByName(name string) (Scaler, error) {
	if name == "" {
		name = DefaultScaler
	}
	s, ok := scalers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown resampler %q (have %s)", name, strings.Join(ScalerNames(), ", "))
	}
	return s, nil
}

// ScalerNames lists registered scaler names, sorted.
func ScalerNames() []string {
	names := make([]string, 0, len(scalers))
	for n := range scalers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
