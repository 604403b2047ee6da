package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgc-cli/internal/profile"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in option presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		for _, p := range profile.All() {
			fmt.Fprintf(w, "  %-10s %s\n", p.Name, p.Description)
		}
		fmt.Fprintf(w, "\n  %s\n", registry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
