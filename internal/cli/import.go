package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

func newImportCmd(a *app) *cobra.Command {
	var store string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import orders from a JSON or JSONL file",
		Long: `Import reads orders from a file holding either a JSON array of orders or
one JSON order per line, and stores them. Orders with an existing ID replace
the stored copy; orders without one get a new ID.

Example:
  storedesk import orders.jsonl
  storedesk import --store s-42 export.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runImport(cmd, args[0], store)
		},
	}
	cmd.Flags().StringVar(&store, "store", "", "store ID for orders that carry none (default: store_id from config)")
	return cmd
}

func (a *app) runImport(cmd *cobra.Command, path, store string) error {
	if err := a.setup(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return userError(fmt.Errorf("read %s: %w", path, err))
	}
	batch, err := decodeOrders(data)
	if err != nil {
		return userError(fmt.Errorf("parse %s: %w", path, err))
	}

	if store == "" {
		store = a.settings.StoreID
	}
	for _, o := range batch {
		if o.StoreID == "" {
			o.StoreID = store
		}
	}

	table, detach, err := a.openOrders()
	if err != nil {
		return err
	}
	defer detach()

	n, err := table.Import(batch)
	if err != nil {
		if errors.Is(err, types.ErrInvalidData) || errors.Is(err, types.ErrInvalidID) {
			return userError(fmt.Errorf("import: %w", err))
		}
		return sysError(fmt.Errorf("import: %w", err))
	}
	a.log.WithFields(logrus.Fields{"file": path, "orders": n}).Info("imported orders")

	if a.jsonMode {
		return writeJSON(cmd.OutOrStdout(), map[string]int{"imported": n})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d orders\n", n)
	return nil
}

// decodeOrders accepts a JSON array of orders or a stream of JSON orders
// separated by whitespace, which covers JSONL. Null orders are rejected.
func decodeOrders(data []byte) ([]*types.Order, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var batch []*types.Order
		if err := json.Unmarshal(trimmed, &batch); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrInvalidData, err)
		}
		for i, o := range batch {
			if o == nil {
				return nil, fmt.Errorf("%w: order %d is null", types.ErrInvalidData, i+1)
			}
		}
		return batch, nil
	}

	var batch []*types.Order
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var o *types.Order
		err := dec.Decode(&o)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: order %d: %v", types.ErrInvalidData, len(batch)+1, err)
		}
		if o == nil {
			return nil, fmt.Errorf("%w: order %d is null", types.ErrInvalidData, len(batch)+1)
		}
		batch = append(batch, o)
	}
	return batch, nil
}
