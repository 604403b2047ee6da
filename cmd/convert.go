package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/AnyUserName/imgc-cli/internal/hasher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertOut      string
	convertHashName bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Resize/re-encode an image and write the result file",
	Long: `Decodes <input>, resizes it according to --width/--height/--scale
(explicit sizes win over the scale factor for their own axis) and
re-encodes it as --type (default: the source type).

The output file keeps the source name with the extension of the format the
encoder actually produced. Unsupported output types fall back to PNG.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	addOptionFlags(convertCmd)
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file or directory (default: next to the input)")
	convertCmd.Flags().BoolVar(&convertHashName, "hash-name", false, "content-addressed output name: <name>.<hash>.<ext>")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	start := time.Now()

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	c, err := newCompressor(args[0], opts)
	if err != nil {
		return err
	}

	out, err := c.ChangedFile()
	if err != nil {
		return fmt.Errorf("convert %s: %w", args[0], err)
	}

	outPath, err := outputPath(args[0], out)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, out.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Info("converted",
		zap.String("input", args[0]),
		zap.String("output", outPath),
		zap.String("type", out.Type),
		zap.Int64("bytes", out.Size()),
	)
	printConvertReport(cmd.OutOrStdout(), c.File(), out, outPath, time.Since(start))
	return nil
}

// outputPath picks where the result goes. Directories (existing, or given
// with a trailing separator) receive a derived name; anything else is used
// as the file path verbatim.
func outputPath(input string, out *compressor.File) (string, error) {
	ext := registry.Resolve(out.Type).Extension()
	base := strings.TrimSuffix(out.Name, filepath.Ext(out.Name))

	name := base + ".min." + ext
	if convertHashName {
		name = hasher.Name(out.Name, out.Data, cfg.HashLength, ext)
	}

	switch {
	case convertOut == "":
		return filepath.Join(filepath.Dir(input), name), nil
	case strings.HasSuffix(convertOut, string(os.PathSeparator)) || strings.HasSuffix(convertOut, "/"):
		return filepath.Join(convertOut, name), nil
	}
	info, err := os.Stat(convertOut)
	if err == nil && info.IsDir() {
		return filepath.Join(convertOut, name), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", convertOut, err)
	}
	return convertOut, nil
}

func printConvertReport(w io.Writer, in, out *compressor.File, outPath string, elapsed time.Duration) {
	ratio := float64(0)
	if in.Size() > 0 {
		ratio = float64(out.Size()) / float64(in.Size()) * 100
	}
	fmt.Fprintf(w, "  Input:   %s (%s, %s)\n", in.Name, in.Type, formatBytes(in.Size()))
	fmt.Fprintf(w, "  Output:  %s (%s, %s)\n", outPath, out.Type, formatBytes(out.Size()))
	fmt.Fprintf(w, "  Ratio:   %.1f%% of original\n", ratio)
	fmt.Fprintf(w, "  Time:    %s\n", elapsed.Round(time.Millisecond))
}
