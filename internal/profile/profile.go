// Package profile holds named option presets.
package profile

import (
	"fmt"
	"sort"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
)

// Profile is a named bundle of conversion options.
type Profile struct {
	Name        string
	Description string
	Options     compressor.Options
}

// Built-in profiles.
var profiles = map[string]Profile{
	"thumbnail": {
		Name:        "thumbnail",
		Description: "fixed 245x156 box, JPEG at 0.80 (stretches)",
		Options: compressor.Options{
			Width: compressor.Float(245), Height: compressor.Float(156),
			Quality: compressor.Float(0.8), FileType: "image/jpeg",
		},
	},
	"small": {
		Name:        "small",
		Description: "quarter size at 0.85",
		Options:     compressor.Options{Scale: compressor.Float(0.25), Quality: compressor.Float(0.85)},
	},
	"medium": {
		Name:        "medium",
		Description: "half size at 0.85",
		Options:     compressor.Options{Scale: compressor.Float(0.5), Quality: compressor.Float(0.85)},
	},
	"large": {
		Name:        "large",
		Description: "three-quarter size at 0.90",
		Options:     compressor.Options{Scale: compressor.Float(0.75), Quality: compressor.Float(0.9)},
	},
	"half": {
		Name:        "half",
		Description: "half size, source format",
		Options:     compressor.Options{Scale: compressor.Float(0.5)},
	},
	"webp": {
		Name:        "webp",
		Description: "same size WebP at 0.82 (PNG if cwebp is missing)",
		Options:     compressor.Options{Quality: compressor.Float(0.82), FileType: "image/webp"},
	},
}

// Get returns a profile by name.
func Get(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// All returns every profile sorted by name.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Apply merges explicit options over the named profile. An empty name
// returns opts unchanged.
func Apply(name string, opts compressor.Options) (compressor.Options, error) {
	if name == "" {
		return opts, nil
	}
	p, err := Get(name)
	if err != nil {
		return compressor.Options{}, err
	}
	return opts.Merge(p.Options), nil
}
