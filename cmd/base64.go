package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var base64Changed bool

var base64Cmd = &cobra.Command{
	Use:   "base64 <input>",
	Short: "Print an image as a data URI",
	Long: `Prints <input> as a data URI. Without options the original bytes are
embedded unchanged; with --changed or any conversion flag the resized,
re-encoded image is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runBase64,
}

func init() {
	addOptionFlags(base64Cmd)
	base64Cmd.Flags().BoolVarP(&base64Changed, "changed", "c", false, "print the converted image even without option flags")
	rootCmd.AddCommand(base64Cmd)
}

func runBase64(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	c, err := newCompressor(args[0], opts)
	if err != nil {
		return err
	}

	var s string
	if base64Changed || hasOptionFlags(cmd) || (cfg != nil && cfg.DefaultPreset != "") {
		s, err = c.ChangedBase64()
	} else {
		s, err = c.Base64()
	}
	if err != nil {
		return fmt.Errorf("base64 %s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
