package orders

import "github.com/mesh-intelligence/storedesk/pkg/types"

// StatusTotals counts orders per catalog entry, in catalog order. Entries
// with no orders report zero. Orders whose status is not a catalog key are
// counted in no bucket, so the sum may be less than len(orders).
func StatusTotals(orders []types.Order, catalog []types.StatusDefinition) []types.StatusTotal {
	counts := make(map[string]int, len(catalog))
	for _, o := range orders {
		counts[o.Status]++
	}

	totals := make([]types.StatusTotal, len(catalog))
	for i, def := range catalog {
		totals[i] = types.StatusTotal{StatusDefinition: def, Total: counts[def.Key]}
	}
	return totals
}

// Totals counts orders against the built-in status catalog.
func Totals(orders []types.Order) []types.StatusTotal {
	return StatusTotals(orders, types.StatusCatalog())
}
