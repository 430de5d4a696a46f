package types

import "time"

// ProductData identifies the product an order was placed for.
type ProductData struct {
	Name string `json:"name"`
}

// Order is one customer order as produced by an order source.
// Status and State are opaque tags; nothing here validates them against
// the status catalog.
type Order struct {
	ID          string       `json:"id"`
	StoreID     string       `json:"storeId,omitempty"`
	Status      string       `json:"status"`
	State       string       `json:"state,omitempty"`
	Home        bool         `json:"home,omitempty"`
	ProductData *ProductData `json:"productData,omitempty"`
	Name        string       `json:"name,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// ProductName returns the product name, or "" when the order carries no
// product data.
func (o Order) ProductName() string {
	if o.ProductData == nil {
		return ""
	}
	return o.ProductData.Name
}
