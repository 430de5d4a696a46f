package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// loadStats reports what loadOrdersJSONL did.
type loadStats struct {
	loaded  int
	skipped int
}

// loadOrdersJSONL reads orders.jsonl from dataDir and inserts every valid
// record into SQLite in one transaction: either all load or the table stays
// empty. Malformed lines, records without an order_id or a parseable
// created_at, and duplicate IDs are skipped. Unknown fields are ignored.
func loadOrdersJSONL(db *sql.DB, dataDir string, log logrus.FieldLogger) (loadStats, error) {
	var stats loadStats

	path := filepath.Join(dataDir, ordersJSONL)
	records, skipped, err := readJSONL(path)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", ordersJSONL, err)
	}
	stats.skipped = skipped
	if len(records) == 0 {
		return stats, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return stats, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO orders (" + orderColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return stats, fmt.Errorf("preparing insert for orders: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		var r orderJSON
		if err := json.Unmarshal(rec, &r); err != nil {
			log.WithField("record", i).WithError(err).Warn("skipping order record")
			stats.skipped++
			continue
		}
		o, err := r.toOrder()
		if err != nil {
			log.WithField("record", i).WithError(err).Warn("skipping order record")
			stats.skipped++
			continue
		}
		if _, err := stmt.Exec(orderArgs(o)...); err != nil {
			log.WithField("order_id", o.ID).WithError(err).Warn("skipping order record")
			stats.skipped++
			continue
		}
		stats.loaded++
	}

	if err := tx.Commit(); err != nil {
		return loadStats{}, fmt.Errorf("committing load transaction: %w", err)
	}
	return stats, nil
}
