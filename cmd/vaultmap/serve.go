package main

import (
	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/aretw0/vaultmap/internal/logging"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long: `Serves the conversion API over HTTP. Requests carry the export and any
glyph overrides; colours without a suggestion or override are reported back
instead of prompted for.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.HTTP.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("cache") {
			cfg.Cache.Backend, _ = cmd.Flags().GetString("cache")
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logger = cli.NewLogger(true, "")
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.RunServe(sigCtx, cfg, cfg.HTTP.Addr, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("cache", "memory", "Result cache: none, memory or redis")
}
