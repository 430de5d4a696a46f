package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

const timeFormat = "2006-01-02 15:04"

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func deliveryLabel(o types.Order) string {
	if o.Home {
		return types.DeliveryHome
	}
	return types.DeliveryPickup
}

// orEmpty renders blank cells as a dash so columns stay aligned.
func orEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeOrderTable(w io.Writer, list []types.Order) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tSTATE\tDELIVERY\tPRODUCT\tCUSTOMER\tPHONE\tCREATED")
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, orEmpty(o.Status), orEmpty(o.State), deliveryLabel(o), orEmpty(o.ProductName()),
			orEmpty(o.Name), orEmpty(o.Phone), o.CreatedAt.Local().Format(timeFormat))
	}
	return tw.Flush()
}
