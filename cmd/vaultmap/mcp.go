package main

import (
	"log"
	"os"

	"github.com/aretw0/vaultmap/internal/cli"
	"github.com/aretw0/vaultmap/internal/logging"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the converter as MCP tools (convert_export, list_colors) and the
colour tables as the vaultmap://palette resource.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		transport := cfg.MCP.Transport
		if cmd.Flags().Changed("transport") {
			transport, _ = cmd.Flags().GetString("transport")
		}
		port := cfg.MCP.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetInt("port")
		}

		// Stdout carries JSON-RPC on stdio; keep every log on stderr.
		log.SetOutput(os.Stderr)
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.RunMCP(sigCtx, cfg, transport, port, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
