package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

func newStatusesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "Print the order status catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := types.StatusCatalog()
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), catalog)
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "KEY\tLABEL\tCOLOR\tICON")
			for _, def := range catalog {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Key, def.Label, def.Color, def.Icon)
			}
			if err := tw.Flush(); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
