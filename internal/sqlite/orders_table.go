package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// Compile-time interface checks.
var (
	_ types.OrderTable  = (*ordersTable)(nil)
	_ types.OrderSource = (*Backend)(nil)
)

// querier is the subset of *sql.DB and *sql.Tx the table needs.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// ordersTable implements OrderTable. Every write updates SQLite and then
// rewrites orders.jsonl atomically.
type ordersTable struct {
	backend *Backend
	writeMu sync.Mutex
}

// withDB runs fn with the backend's database under its read lock.
// Returns ErrSourceDetached after Detach.
func (ot *ordersTable) withDB(fn func(db *sql.DB) error) error {
	ot.backend.mu.RLock()
	defer ot.backend.mu.RUnlock()

	if !ot.backend.attached || ot.backend.db == nil {
		return types.ErrSourceDetached
	}
	return fn(ot.backend.db)
}

// Get retrieves an order by ID.
func (ot *ordersTable) Get(id string) (*types.Order, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	var order *types.Order
	err := ot.withDB(func(db *sql.DB) error {
		row := db.QueryRow("SELECT "+orderColumns+" FROM orders WHERE order_id = ?", id)
		o, err := hydrateOrder(row)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return types.ErrNotFound
			}
			return fmt.Errorf("getting order %s: %w", id, err)
		}
		order = o
		return nil
	})
	return order, err
}

// Set persists an order under id, replacing any existing order with that ID.
// When id is empty the order's own ID is used, and when that is empty too a
// UUID v7 is generated.
// A zero CreatedAt is set to the current time. The assigned ID and CreatedAt
// are written back to order only once the order is stored.
func (ot *ordersTable) Set(id string, order *types.Order) (string, error) {
	if order == nil {
		return "", types.ErrInvalidData
	}

	ot.writeMu.Lock()
	defer ot.writeMu.Unlock()

	stored := prepareOrder(id, *order, time.Now())
	err := ot.withDB(func(db *sql.DB) error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		if err := upsertOrder(tx, &stored); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing order: %w", err)
		}
		return ot.persistJSONL(db)
	})
	if err != nil {
		return "", err
	}
	order.ID, order.CreatedAt = stored.ID, stored.CreatedAt
	return stored.ID, nil
}

// Import stores orders in one transaction and persists orders.jsonl once.
// Orders without an ID are assigned one; nil entries reject the batch. As
// with Set, assigned IDs and creation times reach the caller's orders only
// after the whole batch is stored.
func (ot *ordersTable) Import(orders []*types.Order) (int, error) {
	for _, o := range orders {
		if o == nil {
			return 0, types.ErrInvalidData
		}
	}
	if len(orders) == 0 {
		return 0, nil
	}

	ot.writeMu.Lock()
	defer ot.writeMu.Unlock()

	now := time.Now()
	stored := make([]types.Order, len(orders))
	for i, o := range orders {
		stored[i] = prepareOrder(o.ID, *o, now)
	}

	err := ot.withDB(func(db *sql.DB) error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		defer tx.Rollback()

		for i := range stored {
			if err := upsertOrder(tx, &stored[i]); err != nil {
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing import: %w", err)
		}
		return ot.persistJSONL(db)
	})
	if err != nil {
		return 0, err
	}
	for i, o := range orders {
		o.ID, o.CreatedAt = stored[i].ID, stored[i].CreatedAt
	}
	return len(orders), nil
}

// Delete removes an order.
func (ot *ordersTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	ot.writeMu.Lock()
	defer ot.writeMu.Unlock()

	return ot.withDB(func(db *sql.DB) error {
		res, err := db.Exec("DELETE FROM orders WHERE order_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting order: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting order: %w", err)
		}
		if n == 0 {
			return types.ErrNotFound
		}
		return ot.persistJSONL(db)
	})
}

// Fetch returns the orders of storeID, newest first; ties keep ID order.
// An empty storeID returns every order.
func (ot *ordersTable) Fetch(storeID string) ([]types.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	var args []any
	if storeID != "" {
		query += " WHERE store_id = ?"
		args = append(args, storeID)
	}
	query += " ORDER BY created_at DESC, order_id ASC"

	orders := []types.Order{}
	err := ot.withDB(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return fmt.Errorf("querying orders: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			o, err := hydrateOrder(rows)
			if err != nil {
				return fmt.Errorf("hydrating order: %w", err)
			}
			orders = append(orders, *o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// prepareOrder returns o with the ID and creation time it is stored with.
func prepareOrder(id string, o types.Order, now time.Time) types.Order {
	switch {
	case id != "":
		o.ID = id
	case o.ID == "":
		o.ID = generateUUID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o
}

// upsertOrder inserts o or updates the row with its ID.
func upsertOrder(q querier, o *types.Order) error {
	var exists bool
	err := q.QueryRow("SELECT 1 FROM orders WHERE order_id = ?", o.ID).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking order existence: %w", err)
	}

	args := orderArgs(o)
	if exists {
		_, err = q.Exec(
			"UPDATE orders SET store_id = ?, status = ?, state = ?, home = ?, product_name = ?, name = ?, phone = ?, created_at = ? WHERE order_id = ?",
			append(args[1:], o.ID)...,
		)
	} else {
		_, err = q.Exec("INSERT INTO orders ("+orderColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", args...)
	}
	if err != nil {
		return fmt.Errorf("persisting order %s: %w", o.ID, err)
	}
	return nil
}

// orderArgs returns o's column values in orderColumns order.
func orderArgs(o *types.Order) []any {
	var product any
	if o.ProductData != nil {
		product = o.ProductData.Name
	}
	home := 0
	if o.Home {
		home = 1
	}
	return []any{o.ID, o.StoreID, o.Status, o.State, home, product, o.Name, o.Phone, formatTime(o.CreatedAt)}
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateOrder converts one row in orderColumns order into an order.
func hydrateOrder(row scanner) (*types.Order, error) {
	var o types.Order
	var home int
	var product sql.NullString
	var createdAt string
	if err := row.Scan(&o.ID, &o.StoreID, &o.Status, &o.State, &home, &product, &o.Name, &o.Phone, &createdAt); err != nil {
		return nil, err
	}
	o.Home = home != 0
	if product.Valid {
		o.ProductData = &types.ProductData{Name: product.String}
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = t
	return &o, nil
}

// persistJSONL rewrites orders.jsonl from SQLite, oldest first.
func (ot *ordersTable) persistJSONL(db *sql.DB) error {
	rows, err := db.Query("SELECT " + orderColumns + " FROM orders ORDER BY created_at ASC, order_id ASC")
	if err != nil {
		return fmt.Errorf("querying orders for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		o, err := hydrateOrder(rows)
		if err != nil {
			return fmt.Errorf("scanning order for JSONL: %w", err)
		}
		data, err := json.Marshal(toOrderJSON(o))
		if err != nil {
			return fmt.Errorf("marshaling order for JSONL: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating orders for JSONL: %w", err)
	}

	if err := writeJSONL(filepath.Join(ot.backend.config.DataDir, ordersJSONL), records); err != nil {
		return fmt.Errorf("persisting %s: %w", ordersJSONL, err)
	}
	return nil
}
