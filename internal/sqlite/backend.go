package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/storedesk/internal/logger"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// dbFile is the SQLite database rebuilt from orders.jsonl on every Attach.
const dbFile = "orders.db"

// Backend implements OrderSource using SQLite as the query engine and
// orders.jsonl as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	orders   *ordersTable
	log      logrus.FieldLogger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for attach, load, and skip events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Backend) {
		b.log = l
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.Get(logger.NameStore)
	}
	return b
}

// Orders returns the orders table.
// Returns ErrSourceDetached if the backend is not attached.
func (b *Backend) Orders() (types.OrderTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrSourceDetached
	}
	return b.orders, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, rebuilds the SQLite database, and
// loads orders.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	config.DataDir = dataDir

	// The database is a cache of orders.jsonl; start from a fresh schema.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := ensureJSONL(filepath.Join(dataDir, ordersJSONL)); err != nil {
		db.Close()
		return err
	}

	stats, err := loadOrdersJSONL(db, dataDir, b.log)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.orders = &ordersTable{backend: b}
	b.attached = true

	b.log.WithFields(logrus.Fields{
		"data_dir": dataDir,
		"loaded":   stats.loaded,
		"skipped":  stats.skipped,
	}).Debug("order source attached")
	if stats.skipped > 0 {
		b.log.WithField("skipped", stats.skipped).Warn("skipped malformed order records")
	}

	return nil
}

// Detach releases all resources held by the backend. After Detach, all
// operations return ErrSourceDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.orders = nil
	b.log.Debug("order source detached")

	return nil
}

// generateUUID generates a new UUID v7 for order IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
