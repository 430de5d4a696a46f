package types

import "errors"

// OrderSource produces order records for the pipeline. Callers attach to a
// backend, read the orders table, and detach when done.
type OrderSource interface {
	// Attach connects the source to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, Orders
	// returns ErrSourceDetached.
	Detach() error

	// Orders returns the orders table.
	Orders() (OrderTable, error)
}

// OrderTable provides CRUD access to stored orders.
type OrderTable interface {
	// Get retrieves the order with the given ID.
	// Returns ErrNotFound if no order exists with that ID.
	Get(id string) (*Order, error)

	// Set creates or updates an order. When id is empty the order's own ID
	// is used; when both are empty a new UUID v7 is generated. Returns the
	// actual ID used.
	Set(id string, order *Order) (string, error)

	// Delete removes the order with the given ID.
	// Returns ErrNotFound if no order exists with that ID.
	Delete(id string) error

	// Import stores a batch of orders in one transaction and returns the
	// number stored. Orders without an ID are assigned one.
	Import(orders []*Order) (int, error)

	// Fetch returns the orders of one store, newest first. An empty storeID
	// returns every order.
	Fetch(storeID string) ([]Order, error)
}

// Source lifecycle errors.
var (
	ErrSourceDetached  = errors.New("order source is detached")
	ErrAlreadyAttached = errors.New("order source is already attached")
)

// Table operation errors.
var (
	ErrNotFound    = errors.New("order not found")
	ErrInvalidID   = errors.New("invalid order ID")
	ErrInvalidData = errors.New("invalid order data")
)
