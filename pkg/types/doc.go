// Package types defines the order record, filter criteria, status catalog,
// the OrderSource and OrderTable interfaces, and the standard error values
// shared by the storedesk pipeline, storage backend, and CLI.
package types
