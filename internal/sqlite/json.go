package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// timeLayout is a fixed-width UTC layout, so created_at sorts correctly as
// text in SQLite.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// orderJSON represents an order in orders.jsonl.
type orderJSON struct {
	OrderID     string  `json:"order_id"`
	StoreID     string  `json:"store_id"`
	Status      string  `json:"status"`
	State       string  `json:"state"`
	Home        bool    `json:"home"`
	ProductName *string `json:"product_name"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	CreatedAt   string  `json:"created_at"`
}

// formatTime renders t in timeLayout, in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts timeLayout and any RFC 3339 timestamp.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing created_at %q: %w", s, err)
	}
	return t.UTC(), nil
}

// toOrderJSON converts an order to its JSONL record.
func toOrderJSON(o *types.Order) orderJSON {
	rec := orderJSON{
		OrderID:   o.ID,
		StoreID:   o.StoreID,
		Status:    o.Status,
		State:     o.State,
		Home:      o.Home,
		Name:      o.Name,
		Phone:     o.Phone,
		CreatedAt: formatTime(o.CreatedAt),
	}
	if o.ProductData != nil {
		name := o.ProductData.Name
		rec.ProductName = &name
	}
	return rec
}

// toOrder converts a JSONL record to an order.
func (r orderJSON) toOrder() (*types.Order, error) {
	if r.OrderID == "" {
		return nil, types.ErrInvalidID
	}
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	o := &types.Order{
		ID:        r.OrderID,
		StoreID:   r.StoreID,
		Status:    r.Status,
		State:     r.State,
		Home:      r.Home,
		Name:      r.Name,
		Phone:     r.Phone,
		CreatedAt: createdAt,
	}
	if r.ProductName != nil {
		o.ProductData = &types.ProductData{Name: *r.ProductName}
	}
	return o, nil
}
