package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"billbook/internal/core"

	"github.com/spf13/cobra"
)

var statementCmd = &cobra.Command{
	Use:   "statement <company-doc-id>",
	Short: "Print the ledger statement for a company",
	Long: `Build and print the debit/credit ledger statement for one company
over an inclusive date range. The opening balance replays all activity
before the range start.`,
	Example: `  billbook statement 3f2a... --from 2026-01-01 --to 2026-01-31`,
	Args:    cobra.ExactArgs(1),
	RunE:    runStatement,
}

func init() {
	rootCmd.AddCommand(statementCmd)

	statementCmd.Flags().String("from", "", "Range start (YYYY-MM-DD, inclusive)")
	statementCmd.Flags().String("to", "", "Range end (YYYY-MM-DD, inclusive)")
	_ = statementCmd.MarkFlagRequired("from")
	_ = statementCmd.MarkFlagRequired("to")
}

func runStatement(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	rt, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	st, err := rt.svc.GetStatement(cmd.Context(), args[0], from, to)
	if err != nil {
		return err
	}
	printStatement(st)
	return nil
}

func printStatement(st *core.Statement) {
	fmt.Printf("Statement for %s (%s to %s)\n",
		st.CompanyName, st.From.Format("2006-01-02"), st.To.Format("2006-01-02"))
	fmt.Printf("Opening balance: %s\n\n", st.OpeningBalance.StringFixed(core.MoneyPlaces))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPARTICULARS\tREF\tDEBIT\tCREDIT\tBALANCE")
	for _, row := range st.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format("2006-01-02"),
			row.Particulars,
			row.ReferenceNo,
			row.Debit.StringFixed(core.MoneyPlaces),
			row.Credit.StringFixed(core.MoneyPlaces),
			row.Balance.StringFixed(core.MoneyPlaces))
	}
	w.Flush()

	fmt.Printf("\nClosing balance: %s\n", st.ClosingBalance.StringFixed(core.MoneyPlaces))
}
