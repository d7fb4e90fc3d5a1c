package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"billbook/internal/core"

	"github.com/spf13/cobra"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Inspect companies in the local database",
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all companies with their outstanding balances",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		companies, err := rt.svc.ListCompanies(cmd.Context())
		if err != nil {
			return err
		}
		printCompanies(companies)
		return nil
	},
}

func printCompanies(companies []core.Company) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DOC ID\tNAME\tPHONE\tOUTSTANDING\tSYNCED")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n",
			c.DocID, c.Name, c.Phone, c.Outstanding.StringFixed(core.MoneyPlaces), c.IsSynced)
	}
	w.Flush()
}

func init() {
	companiesCmd.AddCommand(companiesListCmd)
	rootCmd.AddCommand(companiesCmd)
}
