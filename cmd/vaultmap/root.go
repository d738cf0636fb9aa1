package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/aretw0/vaultmap/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vaultmap [file]",
	Short: "Convert Piskel C exports into Dungeon Crawl vault maps",
	Long: `vaultmap reads a sprite exported from Piskel as a C array, asks which
map glyph each colour stands for and prints a MAP ... ENDMAP block for a
Dungeon Crawl Stone Soup .des file.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a vaultmap.yaml config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Log pipeline steps to stderr")

	// Running without a subcommand converts.
	addConvertFlags(rootCmd)
	rootCmd.RunE = convertCmd.RunE
}

// loadConfig reads the persistent flags and the configuration they point at.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cli.NewLogger(debug, cfg.LogLevel), nil
}

func streams(cmd *cobra.Command) cli.Streams {
	return cli.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}
