package main

import (
	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "List the colours of an export",
	Long:  `Prints the distinct colours of an export with cell counts, suggested glyphs and the nearest palette colour of unnamed ones.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := convertOptions(cmd, args)
		if err != nil {
			return err
		}
		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.RunInspect(sigCtx, opts, streams(cmd))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("frame", 0, "Zero-based frame to inspect")
	inspectCmd.Flags().Bool("lenient", false, "Accept exports without the array marker")
	inspectCmd.Flags().Bool("no-color", false, "Disable colour swatches")
}
