package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// main dispatches to the engine's subcommands: serve runs the HTTP server
// and the sweep scheduler, the others are one-shot maintenance tools.
// SIGINT and SIGTERM cancel the command context.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:          "ad-budget",
		Short:        "Budget and dayparting enforcement engine",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		seedCommand(),
		simulateSpendCommand(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
