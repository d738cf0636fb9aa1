package main

import (
	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the colour table and suggested glyphs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		noColor, _ := cmd.Flags().GetBool("no-color")
		cli.PrintPalette(cmd.OutOrStdout(), cfg.Prompt.Color && !noColor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().Bool("no-color", false, "Disable colour swatches")
}
