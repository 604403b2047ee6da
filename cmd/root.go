package cmd

import (
	"fmt"
	"runtime"

	"github.com/AnyUserName/imgc-cli/internal/compressor"
	"github.com/AnyUserName/imgc-cli/internal/config"
	"github.com/AnyUserName/imgc-cli/internal/encoder"
	"github.com/AnyUserName/imgc-cli/internal/logging"
	"github.com/AnyUserName/imgc-cli/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version    = "0.1.0"
	verbose    bool
	configPath string
)

// Set up by the root PersistentPreRunE for every subcommand.
var (
	cfg      *config.Config
	log      = zap.NewNop()
	registry *encoder.Registry
	plat     compressor.Platform
)

var rootCmd = &cobra.Command{
	Use:   "imgc",
	Short: "Resize and re-encode images",
	Long: `imgc decodes an image, resizes it by explicit width/height or a scale
factor, and re-encodes it in the source format or another one.

Results can be written as a file or printed as a data URI.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	defer func() { _ = log.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./imgc.yaml or ~/.config/imgc/imgc.yaml)")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgc %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func setup(_ *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c
	log = logging.New(c.Log)

	registry = encoder.NewRegistry()
	p, err := platform.New(platform.Config{Resampler: c.Resampler, Encoders: registry})
	if err != nil {
		return err
	}
	plat = p

	log.Debug("ready",
		zap.String("resampler", c.Resampler),
		zap.Strings("encoders", registry.Available()),
	)
	return nil
}
