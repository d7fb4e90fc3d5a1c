// Package cli implements the billbook command-line interface. Every command
// bootstraps the full service stack against the configured database and
// remote mirror, runs one operation, and exits.
package cli

import (
	"fmt"
	"os"

	"billbook/internal/logger"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "billbook",
	Short: "Billbook CLI - offline-first billing and ledger management",
	Long: `Billbook CLI manages companies, price lists, bills, receipts, and
ledger statements against the local database, and synchronises companies
and prices with the remote document store when a connection is available.

Required environment variables:
  DATABASE_URL    - PostgreSQL connection string
  REMOTE_BASE_URL - Base URL of the remote document store (empty = offline)`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
