package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/orders"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// totalsOutput is the JSON shape of the totals command.
type totalsOutput struct {
	Totals []types.StatusTotal `json:"totals"`
	Sum    int                 `json:"sum"`
	Orders int                 `json:"orders"`
}

func newTotalsCmd(a *app) *cobra.Command {
	var (
		filter   criteriaFlags
		filtered bool
	)
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Count orders per status",
		Long: `Totals counts the store's orders in each catalog status, in catalog order,
including statuses with no orders. Orders whose status is not in the catalog
are counted under no bucket, so the sum may be lower than the order count.
With --filtered the filter flags are applied first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			list, err := a.fetchOrders(filter.storeID(cmd, a.settings))
			if err != nil {
				return err
			}

			board := orders.NewBoard(list)
			totals, counted := board.Totals(), len(list)
			if filtered {
				board.SetCriteria(filter.criteria)
				totals, counted = board.FilteredTotals(), len(board.Filtered())
			}
			return writeTotals(cmd, a.jsonMode, totals, counted)
		},
	}
	filter.register(cmd)
	cmd.Flags().BoolVar(&filtered, "filtered", false, "apply the filter flags before counting")
	return cmd
}

func writeTotals(cmd *cobra.Command, jsonMode bool, totals []types.StatusTotal, counted int) error {
	sum := types.SumTotals(totals)
	if jsonMode {
		return writeJSON(cmd.OutOrStdout(), totalsOutput{Totals: totals, Sum: sum, Orders: counted})
	}

	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "STATUS\tLABEL\tTOTAL")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", t.Key, t.Label, t.Total)
	}
	fmt.Fprintf(tw, "\t\t\nsum\t\t%d\n", sum)
	if counted != sum {
		fmt.Fprintf(tw, "uncataloged\t\t%d\n", counted-sum)
	}
	if err := tw.Flush(); err != nil {
		return sysError(err)
	}
	return nil
}
