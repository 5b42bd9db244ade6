package main

import (
	"os"

	"github.com/spf13/cobra"

	"issuehub/internal/interfaces/cli/migrate"
	"issuehub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "issuehub",
		Short: "issuehub - a multi-tenant issue tracking backend",
		Long:  `issuehub is an HTTP API for tracking issues across projects, with per-project membership roles, audit logging, and rate limiting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
