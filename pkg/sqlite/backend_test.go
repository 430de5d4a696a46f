package sqlite

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storedesk/pkg/orders"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

func TestNewBackendFeedsPipeline(t *testing.T) {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	source := NewBackendWithLogger(l)
	require.NoError(t, source.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	defer source.Detach()

	table, err := source.Orders()
	require.NoError(t, err)
	_, err = table.Import([]*types.Order{
		{StoreID: "s1", Status: types.StatusPending, Home: true},
		{StoreID: "s1", Status: types.StatusConfirmed},
		{StoreID: "s2", Status: types.StatusPending},
	})
	require.NoError(t, err)

	list, err := table.Fetch("s1")
	require.NoError(t, err)

	board := orders.NewBoard(list)
	c := types.DefaultCriteria()
	c.DeliveryType = types.DeliveryHome
	board.SetCriteria(c)

	assert.Len(t, board.Filtered(), 1)
	assert.Equal(t, 2, types.SumTotals(board.Totals()))
}

func TestNewBackendIsDetached(t *testing.T) {
	_, err := NewBackend().Orders()
	assert.ErrorIs(t, err, types.ErrSourceDetached)
}
