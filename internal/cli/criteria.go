package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// criteriaFlags binds the filter criteria to command flags. Defaults match
// types.DefaultCriteria.
type criteriaFlags struct {
	criteria types.FilterCriteria
	store    string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	def := types.DefaultCriteria()
	fs := cmd.Flags()
	fs.StringVar(&f.criteria.Status, "status", def.Status, `status key to keep, or "all"`)
	fs.StringVar(&f.criteria.State, "state", def.State, `state tag to keep, or "all"`)
	fs.StringVar(&f.criteria.DeliveryType, "delivery", def.DeliveryType, `"home", "pickup" (any non-home), or "all"`)
	fs.StringVar(&f.criteria.ProductData, "product", def.ProductData, `exact product name, or "all"`)
	fs.StringVar(&f.criteria.Customer, "customer", def.Customer, "case-insensitive substring of customer name or phone")
	fs.StringVar(&f.criteria.SortBy, "sort", def.SortBy, "sort key (orders keep source order)")
	fs.StringVar(&f.store, "store", "", "store ID (default: store_id from config, empty for all stores)")
}

// storeID returns the --store flag or the configured store.
func (f *criteriaFlags) storeID(cmd *cobra.Command, s *Settings) string {
	if cmd.Flags().Changed("store") {
		return f.store
	}
	return s.StoreID
}
