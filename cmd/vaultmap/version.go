package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/vaultmap"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vaultmap",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "vaultmap version %s\n", strings.TrimSpace(vaultmap.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
