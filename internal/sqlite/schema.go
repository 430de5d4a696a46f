// Package sqlite implements the SQLite order source for storedesk.
package sqlite

// Schema DDL.
const (
	createOrders = `CREATE TABLE orders (
    order_id TEXT PRIMARY KEY,
    store_id TEXT NOT NULL,
    status TEXT NOT NULL,
    state TEXT NOT NULL,
    home INTEGER NOT NULL,
    product_name TEXT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxOrdersStore   = `CREATE INDEX idx_orders_store ON orders(store_id);`
	idxOrdersCreated = `CREATE INDEX idx_orders_created ON orders(created_at);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createOrders,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxOrdersStore,
	idxOrdersCreated,
}

// orderColumns is the column list shared by every orders query.
const orderColumns = "order_id, store_id, status, state, home, product_name, name, phone, created_at"
