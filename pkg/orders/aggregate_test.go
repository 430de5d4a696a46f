package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

func totalsByKey(totals []types.StatusTotal) map[string]int {
	out := make(map[string]int, len(totals))
	for _, t := range totals {
		out[t.Key] = t.Total
	}
	return out
}

func TestTotalsScenario(t *testing.T) {
	orders := []types.Order{
		{Status: types.StatusPending},
		{Status: types.StatusConfirmed},
		{Status: types.StatusPending},
	}

	totals := Totals(orders)
	require.Len(t, totals, 9)

	for _, tot := range totals {
		switch tot.Key {
		case types.StatusPending:
			assert.Equal(t, 2, tot.Total)
		case types.StatusConfirmed:
			assert.Equal(t, 1, tot.Total)
		default:
			assert.Equal(t, 0, tot.Total, tot.Key)
		}
	}
}

func TestTotalsFollowCatalogOrder(t *testing.T) {
	catalog := types.StatusCatalog()
	totals := Totals(nil)
	require.Len(t, totals, len(catalog))
	for i, def := range catalog {
		assert.Equal(t, def, totals[i].StatusDefinition)
		assert.Zero(t, totals[i].Total)
	}
}

func TestTotalsConnectionFailedBucketsStaySeparate(t *testing.T) {
	orders := []types.Order{
		{Status: types.StatusConnectionFailed1},
		{Status: types.StatusConnectionFailed3},
		{Status: types.StatusConnectionFailed3},
	}
	got := totalsByKey(Totals(orders))

	assert.Equal(t, 1, got[types.StatusConnectionFailed1])
	assert.Equal(t, 0, got[types.StatusConnectionFailed2])
	assert.Equal(t, 2, got[types.StatusConnectionFailed3])
}

func TestTotalsSumProperty(t *testing.T) {
	tests := []struct {
		name    string
		orders  []types.Order
		wantSum int
	}{
		{
			name:    "empty",
			wantSum: 0,
		},
		{
			name: "every status known",
			orders: []types.Order{
				{Status: types.StatusReady}, {Status: types.StatusFailed}, {Status: types.StatusPostponed},
			},
			wantSum: 3,
		},
		{
			name: "unknown and differently cased statuses fall in no bucket",
			orders: []types.Order{
				{Status: types.StatusReady}, {Status: "shipped"}, {Status: "Ready"}, {Status: ""},
			},
			wantSum: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := types.SumTotals(Totals(tt.orders))
			assert.Equal(t, tt.wantSum, sum)
			assert.LessOrEqual(t, sum, len(tt.orders))
		})
	}

	orders := fixtureOrders()
	known := 0
	for _, o := range orders {
		if _, ok := types.LookupStatus(o.Status); ok {
			known++
		}
	}
	assert.Equal(t, known, types.SumTotals(Totals(orders)))
	assert.Less(t, known, len(orders))
}

func TestStatusTotalsCustomCatalog(t *testing.T) {
	catalog := []types.StatusDefinition{
		{Key: types.StatusFailed, Label: "Failed"},
		{Key: types.StatusPending, Label: "Pending"},
	}
	orders := []types.Order{{Status: types.StatusPending}, {Status: types.StatusConfirmed}}

	totals := StatusTotals(orders, catalog)
	require.Len(t, totals, 2)
	assert.Equal(t, types.StatusFailed, totals[0].Key)
	assert.Equal(t, 0, totals[0].Total)
	assert.Equal(t, types.StatusPending, totals[1].Key)
	assert.Equal(t, 1, totals[1].Total)
}
