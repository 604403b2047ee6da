package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var infoProbe bool

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show source and target dimensions as JSON",
	Long: `Decodes <input> and prints its natural size, declared type and the
target size the given options resolve to. With --probe the conversion is
run and the produced type and size are reported too.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	addOptionFlags(infoCmd)
	infoCmd.Flags().BoolVar(&infoProbe, "probe", false, "run the conversion and report the produced output")
	rootCmd.AddCommand(infoCmd)
}

// Info is the JSON shape printed by "imgc info".
type Info struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Size          int64   `json:"size"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	TargetWidth   float64 `json:"target_width"`
	TargetHeight  float64 `json:"target_height"`
	RequestedType string  `json:"requested_type"`
	OutputType    string  `json:"output_type,omitempty"`
	OutputSize    int64   `json:"output_size,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	c, err := newCompressor(args[0], opts)
	if err != nil {
		return err
	}

	img, err := c.Image()
	if err != nil {
		return fmt.Errorf("info %s: %w", args[0], err)
	}
	src := c.File()
	w, h := compressor.Resolve(img.Width, img.Height, opts)
	info := Info{
		Name:          src.Name,
		Type:          src.Type,
		Size:          src.Size(),
		Width:         img.Width,
		Height:        img.Height,
		TargetWidth:   w,
		TargetHeight:  h,
		RequestedType: opts.FileType,
	}
	if info.RequestedType == "" {
		info.RequestedType = src.Type
	}

	if infoProbe {
		out, err := c.ChangedFile()
		if err != nil {
			return fmt.Errorf("info %s: %w", args[0], err)
		}
		info.OutputType = out.Type
		info.OutputSize = out.Size()
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
