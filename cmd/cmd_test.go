package cmd

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/imgc-cli/internal/testimage"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// run executes the root command with args after restoring every flag to its
// default, since cobra keeps flag state in package variables.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func fixture(t *testing.T, w, h int) string {
	t.Helper()
	return testimage.Write(t, t.TempDir(), "photo.png", testimage.PNG(t, testimage.Gradient(w, h)))
}

func TestConvertWritesResizedFile(t *testing.T) {
	src := fixture(t, 80, 40)
	outDir := t.TempDir()

	stdout, err := run(t, "convert", src, "--scale", "0.5", "--width", "60", "-o", outDir)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, stdout)
	}

	outPath := filepath.Join(outDir, "photo.min.png")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" || cfg.Width != 60 || cfg.Height != 20 {
		t.Errorf("got %s %dx%d, want png 60x20", format, cfg.Width, cfg.Height)
	}
	if !strings.Contains(stdout, outPath) {
		t.Errorf("report does not mention output path:\n%s", stdout)
	}
}

func TestConvertTypeAndHashName(t *testing.T) {
	src := fixture(t, 20, 20)
	outDir := t.TempDir()

	if _, err := run(t, "convert", src, "--type", "jpg", "--hash-name", "-o", outDir+"/"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(outDir, "photo.*.jpg"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one hashed jpg, got %v (%v)", matches, err)
	}
	if parts := strings.Split(filepath.Base(matches[0]), "."); len(parts) != 3 || len(parts[1]) != 8 {
		t.Errorf("unexpected name %q", filepath.Base(matches[0]))
	}
}

func TestConvertRejectsNonImage(t *testing.T) {
	src := testimage.Write(t, t.TempDir(), "notes.txt", []byte("not an image"))
	if _, err := run(t, "convert", src); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("got %v, want decode error", err)
	}
}

func TestConvertPresetKeepsAspectRatio(t *testing.T) {
	src := fixture(t, 200, 100)
	outDir := t.TempDir()

	if _, err := run(t, "convert", src, "--preset", "small", "-o", outDir); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "photo.min.png"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 25 {
		t.Errorf("got %dx%d, want 50x25", cfg.Width, cfg.Height)
	}
}

func TestPresetFlagUsage(t *testing.T) {
	for _, c := range []*cobra.Command{convertCmd, base64Cmd, infoCmd} {
		f := c.Flags().Lookup("preset")
		if f == nil {
			t.Fatalf("%s: no --preset flag", c.Name())
		}
		if !strings.Contains(f.Usage, `"imgc presets"`) {
			t.Errorf("%s: usage %q", c.Name(), f.Usage)
		}
	}
}

func TestBase64(t *testing.T) {
	src := fixture(t, 10, 10)

	out, err := run(t, "base64", src)
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	orig, _ := os.ReadFile(src)
	if !strings.HasPrefix(out, "data:image/png;base64,") {
		t.Errorf("prefix: %q", out[:24])
	}

	changed, err := run(t, "base64", src, "--type", "image/jpeg", "--quality", "0.5")
	if err != nil {
		t.Fatalf("base64 changed: %v", err)
	}
	if !strings.HasPrefix(changed, "data:image/jpeg;base64,") {
		t.Errorf("changed prefix: %q", changed[:24])
	}
	if len(orig) == 0 || changed == out {
		t.Error("changed output should differ from original")
	}
}

func TestInfo(t *testing.T) {
	src := fixture(t, 200, 100)

	out, err := run(t, "info", src, "--preset", "half", "--height", "80", "--probe")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	var info Info
	if err := jsoniter.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("parse info: %v\n%s", err, out)
	}
	if info.Width != 200 || info.Height != 100 {
		t.Errorf("natural size: got %dx%d", info.Width, info.Height)
	}
	if info.TargetWidth != 100 || info.TargetHeight != 80 {
		t.Errorf("target size: got %gx%g", info.TargetWidth, info.TargetHeight)
	}
	if info.Type != "image/png" || info.OutputType != "image/png" || info.OutputSize == 0 {
		t.Errorf("types: %+v", info)
	}
}

func TestPresets(t *testing.T) {
	out, err := run(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range []string{"thumbnail", "half", "webp"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing preset %q in:\n%s", name, out)
		}
	}
}
