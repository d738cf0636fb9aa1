package main

import (
	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert an export interactively",
	Long: `Reads the export (".c" is appended when missing), asks for a glyph for
every colour and prints the MAP block on stdout. Without a file argument, or
when the file does not exist, the name is asked for until one is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := convertOptions(cmd, args)
		if err != nil {
			return err
		}
		preview, _ := cmd.Flags().GetBool("preview")
		opts.Preview = preview

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.RunConvert(sigCtx, opts, streams(cmd))
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConvertFlags(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().Int("frame", 0, "Zero-based frame to convert")
	cmd.Flags().Bool("lenient", false, "Accept exports without the array marker")
	cmd.Flags().Bool("preview", false, "Render the map as markdown on stderr")
	cmd.Flags().Bool("no-color", false, "Disable colour swatches and the banner")
}

// convertOptions merges flags over the loaded configuration.
func convertOptions(cmd *cobra.Command, args []string) (cli.ConvertOptions, error) {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return cli.ConvertOptions{}, err
	}

	opts := cli.ConvertOptions{
		Lenient: cfg.Parse.Lenient,
		Color:   cfg.Prompt.Color,
		Logger:  logger,
	}
	if len(args) > 0 {
		opts.File = args[0]
	}
	opts.Debug, _ = cmd.Flags().GetBool("debug")
	opts.Frame, _ = cmd.Flags().GetInt("frame")
	if cmd.Flags().Changed("lenient") {
		opts.Lenient, _ = cmd.Flags().GetBool("lenient")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		opts.Color = false
	}
	return opts, nil
}
