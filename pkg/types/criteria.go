package types

// FilterAll is the sentinel meaning "no filter on this axis".
const FilterAll = "all"

// Delivery type values for FilterCriteria.DeliveryType. Any value other than
// DeliveryHome and FilterAll selects orders that are not home deliveries.
const (
	DeliveryHome   = "home"
	DeliveryPickup = "pickup"
)

// Sort orders recognized by FilterCriteria.SortBy.
const (
	SortNewest = "newest"
)

// FilterCriteria selects the active subset of an order collection.
// JSON names follow the dashboard's filter record, including its
// "delevetyType" spelling.
type FilterCriteria struct {
	Status       string `json:"status"`
	ProductData  string `json:"productData"`
	Customer     string `json:"customer"`
	State        string `json:"state"`
	DeliveryType string `json:"delevetyType"`
	SortBy       string `json:"sortBy"`
}

// DefaultCriteria returns the criteria with every axis inactive.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		Status:       FilterAll,
		ProductData:  FilterAll,
		Customer:     "",
		State:        FilterAll,
		DeliveryType: FilterAll,
		SortBy:       SortNewest,
	}
}

// Criteria axis names reported by Active.
const (
	AxisStatus   = "status"
	AxisState    = "state"
	AxisDelivery = "delivery"
	AxisProduct  = "product"
	AxisCustomer = "customer"
)

// Active returns the names of the axes that narrow the collection, in
// evaluation order. SortBy never appears: it does not filter.
func (c FilterCriteria) Active() []string {
	axes := make([]string, 0, 5)
	if c.Status != FilterAll {
		axes = append(axes, AxisStatus)
	}
	if c.State != FilterAll {
		axes = append(axes, AxisState)
	}
	if c.DeliveryType != FilterAll {
		axes = append(axes, AxisDelivery)
	}
	if c.ProductData != FilterAll {
		axes = append(axes, AxisProduct)
	}
	if c.Customer != "" {
		axes = append(axes, AxisCustomer)
	}
	return axes
}

// IsDefault reports whether c equals DefaultCriteria.
func (c FilterCriteria) IsDefault() bool {
	return c == DefaultCriteria()
}
