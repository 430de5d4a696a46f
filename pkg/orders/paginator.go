package orders

// DefaultVisible is the initial cursor when the caller supplies none.
const DefaultVisible = 10

// PageStep is how far Advance moves the cursor.
const PageStep = 10

// Page is the visible window of a collection.
type Page[T any] struct {
	Items   []T  `json:"items"`
	Visible int  `json:"visible"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Paginator exposes a growing prefix of a collection. The cursor is not tied
// to any particular collection: handing it a different (for example, newly
// filtered) slice keeps the cursor where it was. Call Reset to start over.
type Paginator[T any] struct {
	initial int
	visible int
}

// NewPaginator returns a paginator starting at DefaultVisible items.
func NewPaginator[T any]() *Paginator[T] {
	return NewPaginatorAt[T](DefaultVisible)
}

// NewPaginatorAt returns a paginator starting at n items. Negative n is
// treated as zero.
func NewPaginatorAt[T any](n int) *Paginator[T] {
	if n < 0 {
		n = 0
	}
	return &Paginator[T]{initial: n, visible: n}
}

// Cursor returns the number of items currently exposed from the head of the
// collection. It may exceed the collection length.
func (p *Paginator[T]) Cursor() int {
	return p.visible
}

// VisibleItems returns the first Cursor() items, or all of them when the
// collection is shorter. The result aliases items.
func (p *Paginator[T]) VisibleItems(items []T) []T {
	if p.visible >= len(items) {
		return items
	}
	return items[:p.visible]
}

// HasMore reports whether items extends past the cursor.
func (p *Paginator[T]) HasMore(items []T) bool {
	return p.visible < len(items)
}

// Window returns the visible items together with the cursor state.
func (p *Paginator[T]) Window(items []T) Page[T] {
	return Page[T]{
		Items:   p.VisibleItems(items),
		Visible: p.visible,
		Total:   len(items),
		HasMore: p.HasMore(items),
	}
}

// Advance moves the cursor forward by PageStep when items extends past it and
// reports whether it moved. It is a no-op otherwise.
func (p *Paginator[T]) Advance(items []T) bool {
	if !p.HasMore(items) {
		return false
	}
	p.visible += PageStep
	return true
}

// Reset moves the cursor back to its initial value.
func (p *Paginator[T]) Reset() {
	p.visible = p.initial
}
