package orders

import "github.com/mesh-intelligence/storedesk/pkg/types"

// Board holds the state one order list page threads through the pipeline:
// the unfiltered orders, the active criteria, and the pagination cursor.
// Views are recomputed on every call. A Board is not safe for concurrent use.
type Board struct {
	orders    []types.Order
	criteria  types.FilterCriteria
	paginator *Paginator[types.Order]
	catalog   []types.StatusDefinition
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithInitialVisible sets the initial pagination cursor.
func WithInitialVisible(n int) BoardOption {
	return func(b *Board) {
		b.paginator = NewPaginatorAt[types.Order](n)
	}
}

// WithCatalog replaces the status catalog used by Totals and FilteredTotals.
func WithCatalog(catalog []types.StatusDefinition) BoardOption {
	return func(b *Board) {
		b.catalog = catalog
	}
}

// NewBoard returns a board over orders with default criteria and a cursor at
// DefaultVisible.
func NewBoard(orders []types.Order, opts ...BoardOption) *Board {
	b := &Board{
		orders:    orders,
		criteria:  types.DefaultCriteria(),
		paginator: NewPaginator[types.Order](),
		catalog:   types.StatusCatalog(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Orders returns the unfiltered collection.
func (b *Board) Orders() []types.Order {
	return b.orders
}

// SetOrders replaces the unfiltered collection. The cursor is kept.
func (b *Board) SetOrders(orders []types.Order) {
	b.orders = orders
}

// Criteria returns the active criteria.
func (b *Board) Criteria() types.FilterCriteria {
	return b.criteria
}

// SetCriteria replaces the whole criteria record. The cursor is kept, so a
// narrower filter may leave fewer visible items or none past the cursor.
func (b *Board) SetCriteria(c types.FilterCriteria) {
	b.criteria = c
}

// ClearFilters replaces the criteria with DefaultCriteria. The cursor is kept.
func (b *Board) ClearFilters() {
	b.criteria = types.DefaultCriteria()
}

// Filtered returns the orders matching the active criteria.
func (b *Board) Filtered() []types.Order {
	return Filter(b.orders, b.criteria)
}

// Page returns the visible window of the filtered orders.
func (b *Board) Page() Page[types.Order] {
	return b.paginator.Window(b.Filtered())
}

// LoadMore advances the cursor over the filtered orders and reports whether
// it moved.
func (b *Board) LoadMore() bool {
	return b.paginator.Advance(b.Filtered())
}

// Cursor returns the pagination cursor.
func (b *Board) Cursor() int {
	return b.paginator.Cursor()
}

// ResetCursor moves the cursor back to its initial value.
func (b *Board) ResetCursor() {
	b.paginator.Reset()
}

// Totals counts the unfiltered orders per status.
func (b *Board) Totals() []types.StatusTotal {
	return StatusTotals(b.orders, b.catalog)
}

// FilteredTotals counts the filtered orders per status.
func (b *Board) FilteredTotals() []types.StatusTotal {
	return StatusTotals(b.Filtered(), b.catalog)
}
