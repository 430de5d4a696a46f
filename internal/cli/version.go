package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/storedesk"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storedesk version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": storedesk.Version,
					"module":  storedesk.ModulePath,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "storedesk v%s\nmodule: %s\n", storedesk.Version, storedesk.ModulePath)
			return nil
		},
	}
}
