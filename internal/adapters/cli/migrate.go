package cli

import (
	"billbook/internal/logger"
	"billbook/internal/store"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database schema patches",
	Long: `Apply all schema patches newer than the recorded schema version.
Patches are additive and idempotent; running migrate on an up-to-date
database is a no-op.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	rt, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	if err := store.Migrate(cmd.Context(), rt.pool); err != nil {
		return err
	}
	log := logger.WithComponent("migrate")
	log.Info().Msg("schema up to date")
	return nil
}
