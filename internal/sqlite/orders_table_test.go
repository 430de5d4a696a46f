package sqlite

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

func ordersOf(t *testing.T, b *Backend) types.OrderTable {
	t.Helper()
	table, err := b.Orders()
	require.NoError(t, err)
	return table
}

func TestOrdersTable_SetGeneratesUUIDv7(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	o := &types.Order{Status: types.StatusPending}
	id, err := table.Set("", o)
	require.NoError(t, err)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, id, o.ID)
	assert.False(t, o.CreatedAt.IsZero(), "CreatedAt defaults to now")
}

func TestOrdersTable_SetRoundTrip(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	created := time.Date(2026, 3, 1, 9, 30, 0, 123, time.UTC)
	in := &types.Order{
		StoreID:     "s1",
		Status:      types.StatusConnectionFailed2,
		State:       "unpaid",
		Home:        true,
		ProductData: &types.ProductData{Name: "Mug"},
		Name:        "Anna",
		Phone:       "555-0100",
		CreatedAt:   created,
	}
	id, err := table.Set("o-1", in)
	require.NoError(t, err)
	assert.Equal(t, "o-1", id)

	got, err := table.Get("o-1")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestOrdersTable_SetKeepsMissingProductData(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	_, err := table.Set("bare", &types.Order{Status: types.StatusReady})
	require.NoError(t, err)
	_, err = table.Set("empty", &types.Order{Status: types.StatusReady, ProductData: &types.ProductData{}})
	require.NoError(t, err)

	bare, err := table.Get("bare")
	require.NoError(t, err)
	assert.Nil(t, bare.ProductData)

	empty, err := table.Get("empty")
	require.NoError(t, err)
	require.NotNil(t, empty.ProductData)
	assert.Empty(t, empty.ProductData.Name)
}

func TestOrdersTable_SetUpdates(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	o := &types.Order{Status: types.StatusPending}
	id, err := table.Set("", o)
	require.NoError(t, err)

	o.Status = types.StatusConfirmed
	_, err = table.Set(id, o)
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusConfirmed, got.Status)

	all, err := table.Fetch("")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrdersTable_Errors(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	_, err := table.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = table.Get("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = table.Set("", nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)

	assert.ErrorIs(t, table.Delete(""), types.ErrInvalidID)
	assert.ErrorIs(t, table.Delete("missing"), types.ErrNotFound)

	_, err = table.Import([]*types.Order{{Status: types.StatusReady}, nil})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestOrdersTable_Delete(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	_, err := table.Set("gone", &types.Order{Status: types.StatusPending})
	require.NoError(t, err)
	require.NoError(t, table.Delete("gone"))

	_, err = table.Get("gone")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestOrdersTable_FetchNewestFirstByStore(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n, err := table.Import([]*types.Order{
		{ID: "a", StoreID: "s1", Status: types.StatusPending, CreatedAt: base},
		{ID: "b", StoreID: "s2", Status: types.StatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: "c", StoreID: "s1", Status: types.StatusReady, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "d", StoreID: "s1", Status: types.StatusReady, CreatedAt: base.Add(500 * time.Millisecond)},
		{ID: "e", StoreID: "s1", Status: types.StatusReady, CreatedAt: base.Add(2 * time.Hour)},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	s1, err := table.Fetch("s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "e", "d", "a"}, orderIDs(s1))

	all, err := table.Fetch("")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "e", "b", "d", "a"}, orderIDs(all))

	none, err := table.Fetch("unknown")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrdersTable_ImportEmpty(t *testing.T) {
	b, _ := attachTemp(t)
	table := ordersOf(t, b)

	n, err := table.Import(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrdersTable_Import(t *testing.T) {
	b, dir := attachTemp(t)
	table := ordersOf(t, b)

	_, err := table.Set("a", &types.Order{Status: types.StatusPending})
	require.NoError(t, err)

	n, err := table.Import([]*types.Order{
		{ID: "a", Status: types.StatusReady},
		{ID: "b", Status: types.StatusFailed},
		{Status: types.StatusConfirmed},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	a, err := table.Get("a")
	require.NoError(t, err)
	assert.Equal(t, types.StatusReady, a.Status, "import replaces existing orders")

	all, err := table.Fetch("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = table.Import([]*types.Order{{ID: "c"}, nil})
	assert.ErrorIs(t, err, types.ErrInvalidData)
	_, err = table.Get("c")
	assert.ErrorIs(t, err, types.ErrNotFound, "a rejected batch stores nothing")

	require.NoError(t, b.Detach())
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	all, err = ordersOf(t, b).Fetch("")
	require.NoError(t, err)
	assert.Len(t, all, 3, "imported orders reload from orders.jsonl")
}

func TestOrdersTable_FailedWriteLeavesCallerOrders(t *testing.T) {
	b, dir := attachTemp(t)
	table := ordersOf(t, b)
	require.NoError(t, os.RemoveAll(dir))

	single := &types.Order{Status: types.StatusPending}
	_, err := table.Set("", single)
	require.Error(t, err)
	assert.Empty(t, single.ID)
	assert.True(t, single.CreatedAt.IsZero())

	batch := []*types.Order{{Status: types.StatusReady}, {ID: "kept", Status: types.StatusFailed}}
	_, err = table.Import(batch)
	require.Error(t, err)
	assert.Empty(t, batch[0].ID)
	assert.True(t, batch[0].CreatedAt.IsZero())
	assert.Equal(t, "kept", batch[1].ID)
	assert.True(t, batch[1].CreatedAt.IsZero())
}

func orderIDs(orders []types.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}
