package types

// Order status keys known to the dashboard.
const (
	StatusPending           = "pending"
	StatusConnectionFailed1 = "Connection failed 1"
	StatusConnectionFailed2 = "Connection failed 2"
	StatusConnectionFailed3 = "Connection failed 3"
	StatusConfirmed         = "confirmed"
	StatusReady             = "ready"
	StatusPostponed         = "postponed"
	StatusCancelled         = "cancelled"
	StatusFailed            = "failed"
)

// StatusDefinition describes how one order status is displayed.
type StatusDefinition struct {
	Key   string `json:"key"`   // Matched against Order.Status.
	Label string `json:"label"` // Display label.
	Color string `json:"color"` // Color class for badges.
	Icon  string `json:"icon"`  // Icon name.
}

// StatusTotal is the number of orders in one status bucket.
type StatusTotal struct {
	StatusDefinition
	Total int `json:"total"`
}

// statusCatalog is the display order of status buckets. The three
// connection-failed entries share color and icon but are separate buckets.
var statusCatalog = [...]StatusDefinition{
	{Key: StatusPending, Label: "Pending", Color: "bg-yellow-100 text-yellow-800", Icon: "clock"},
	{Key: StatusConnectionFailed1, Label: "Connection failed 1", Color: "bg-orange-100 text-orange-800", Icon: "phone-off"},
	{Key: StatusConnectionFailed2, Label: "Connection failed 2", Color: "bg-orange-100 text-orange-800", Icon: "phone-off"},
	{Key: StatusConnectionFailed3, Label: "Connection failed 3", Color: "bg-orange-100 text-orange-800", Icon: "phone-off"},
	{Key: StatusConfirmed, Label: "Confirmed", Color: "bg-green-100 text-green-800", Icon: "check-circle"},
	{Key: StatusReady, Label: "Ready", Color: "bg-blue-100 text-blue-800", Icon: "package"},
	{Key: StatusPostponed, Label: "Postponed", Color: "bg-purple-100 text-purple-800", Icon: "calendar"},
	{Key: StatusCancelled, Label: "Cancelled", Color: "bg-gray-100 text-gray-800", Icon: "x-circle"},
	{Key: StatusFailed, Label: "Failed", Color: "bg-red-100 text-red-800", Icon: "alert-triangle"},
}

// StatusCatalog returns a copy of the status catalog in display order.
func StatusCatalog() []StatusDefinition {
	out := make([]StatusDefinition, len(statusCatalog))
	copy(out, statusCatalog[:])
	return out
}

// LookupStatus returns the catalog entry for key.
func LookupStatus(key string) (StatusDefinition, bool) {
	for _, def := range statusCatalog {
		if def.Key == key {
			return def, true
		}
	}
	return StatusDefinition{}, false
}

// SumTotals returns the sum of all bucket totals.
func SumTotals(totals []StatusTotal) int {
	sum := 0
	for _, t := range totals {
		sum += t.Total
	}
	return sum
}
