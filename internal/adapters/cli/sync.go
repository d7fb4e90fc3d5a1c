package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull remote collections into the local database",
}

var pullCompaniesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Overwrite local companies from the remote mirror",
	Long: `Fetch every company document from the remote store and upsert it
locally, marking each as synced. Local companies absent from the remote
are left untouched.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		result, err := rt.svc.PullCompanies(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Pulled %d companies\n", result.Count)
		return nil
	},
}

var pullPricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Replace the local price list with the remote collection",
	Long: `Fetch the remote price collection and replace the local price table
with it. An empty remote collection clears the local table.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		result, err := rt.svc.PullPrices(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Pulled %d prices\n", result.Count)
		return nil
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push unsynced local companies to the remote store",
	Long: `Push every locally modified company, including its outstanding
balance, to the remote store and mark it synced. Companies that fail to
push stay dirty and are retried on the next run.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		result, err := rt.svc.SyncCompanies(cmd.Context())
		if result != nil {
			fmt.Printf("Pushed %d companies\n", result.Count)
		}
		return err
	},
}

func init() {
	pullCmd.AddCommand(pullCompaniesCmd)
	pullCmd.AddCommand(pullPricesCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(syncCmd)
}
