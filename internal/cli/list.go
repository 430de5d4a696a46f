package cli

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/orders"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

type listOptions struct {
	filter  criteriaFlags
	initial int
	more    int
	clear   bool
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Orders  []types.Order `json:"orders"`
	Visible int           `json:"visible"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible window of filtered orders",
		Long: `List fetches the store's orders newest first, keeps those matching every
active filter, and prints the first visible window. The window starts at the
configured initial size and grows by ten for each --more.

Example:
  storedesk list
  storedesk list --status pending --delivery home
  storedesk list --customer 555 --more 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, &opts)
		},
	}
	opts.filter.register(cmd)
	cmd.Flags().IntVar(&opts.initial, "initial", orders.DefaultVisible, "initial window size (default: initial_visible from config)")
	cmd.Flags().IntVar(&opts.more, "more", 0, "load more this many times")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "clear all filters before listing")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, opts *listOptions) error {
	if opts.more < 0 {
		return userError(errors.New("--more must not be negative"))
	}
	if cmd.Flags().Changed("initial") && opts.initial < 0 {
		return userError(errors.New("--initial must not be negative"))
	}
	if err := a.setup(); err != nil {
		return err
	}

	list, err := a.fetchOrders(opts.filter.storeID(cmd, a.settings))
	if err != nil {
		return err
	}

	initial := a.settings.InitialVisible
	if cmd.Flags().Changed("initial") {
		initial = opts.initial
	}
	board := orders.NewBoard(list, orders.WithInitialVisible(initial))
	board.SetCriteria(opts.filter.criteria)
	if opts.clear {
		board.ClearFilters()
	}
	for range opts.more {
		if !board.LoadMore() {
			break
		}
	}
	page := board.Page()

	a.log.WithFields(logrus.Fields{
		"active":  board.Criteria().Active(),
		"visible": page.Visible,
		"total":   page.Total,
	}).Debug("listed orders")

	if a.jsonMode {
		return writeJSON(cmd.OutOrStdout(), listOutput{
			Orders:  page.Items,
			Visible: page.Visible,
			Total:   page.Total,
			HasMore: page.HasMore,
		})
	}

	out := cmd.OutOrStdout()
	if err := writeOrderTable(out, page.Items); err != nil {
		return sysError(err)
	}
	fmt.Fprintf(out, "\nshowing %d of %d orders", len(page.Items), page.Total)
	if page.HasMore {
		fmt.Fprintf(out, " (run with --more %d for the next %d)", opts.more+1, orders.PageStep)
	}
	fmt.Fprintln(out)
	return nil
}
