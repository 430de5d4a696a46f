// Package sqlite provides the public API for the SQLite order source.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/storedesk/internal/sqlite"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// NewBackend creates a new SQLite order source.
// The source is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	source := sqlite.NewBackend()
//	err := source.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".storedesk-db",
//	})
//	defer source.Detach()
func NewBackend() types.OrderSource {
	return sqlite.NewBackend()
}

// NewBackendWithLogger creates a SQLite order source that logs to l.
func NewBackendWithLogger(l logrus.FieldLogger) types.OrderSource {
	return sqlite.NewBackend(sqlite.WithLogger(l))
}
