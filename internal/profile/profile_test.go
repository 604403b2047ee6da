package profile

import (
	"testing"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
)

func TestGetUnknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("no presets")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Errorf("not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestApplyExplicitWins(t *testing.T) {
	opts, err := Apply("thumbnail", compressor.Options{Width: compressor.Float(100)})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if *opts.Width != 100 {
		t.Errorf("width: got %g", *opts.Width)
	}
	if *opts.Height != 156 {
		t.Errorf("height: got %g", *opts.Height)
	}
	if opts.FileType != "image/jpeg" {
		t.Errorf("file type: got %q", opts.FileType)
	}
}

func TestApplyEmptyName(t *testing.T) {
	in := compressor.Options{Scale: compressor.Float(2)}
	out, err := Apply("", in)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if out.Scale != in.Scale || out.Width != nil {
		t.Errorf("options changed: %+v", out)
	}
}

func TestScalePresetsKeepAspectRatio(t *testing.T) {
	tests := []struct {
		name  string
		wantW float64
		wantH float64
	}{
		{"small", 500, 250},
		{"medium", 1000, 500},
		{"large", 1500, 750},
		{"half", 1000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Apply(tt.name, compressor.Options{})
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			w, h := compressor.Resolve(2000, 1000, opts)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %gx%g, want %gx%g", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
