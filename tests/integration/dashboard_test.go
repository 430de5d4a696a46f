package integration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

type listResult struct {
	Orders  []types.Order `json:"orders"`
	Visible int           `json:"visible"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

type totalsResult struct {
	Totals []types.StatusTotal `json:"totals"`
	Sum    int                 `json:"sum"`
	Orders int                 `json:"orders"`
}

// dashboardOrders returns 12 pending home orders for Ana and 3 ready pickup
// orders for Bo, as JSONL.
func dashboardOrders() string {
	var b strings.Builder
	for i := range 12 {
		fmt.Fprintf(&b, `{"id":"p-%02d","status":"pending","home":true,"name":"Ana","phone":"600-%02d","productData":{"name":"Chair"},"createdAt":"2026-05-01T08:%02d:00Z"}`+"\n", i, i, i)
	}
	for i := range 3 {
		fmt.Fprintf(&b, `{"id":"r-%d","status":"ready","name":"Bo","phone":"700-%d","productData":{"name":"Desk"},"createdAt":"2026-05-02T08:0%d:00Z"}`+"\n", i, i, i)
	}
	return b.String()
}

func TestDashboardWorkflow(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")
	out := env.MustRun("import", "--store", "s1", env.WriteFile("orders.jsonl", dashboardOrders()))
	assert.Contains(t, out.Stdout, "imported 15 orders")

	list := ParseJSON[listResult](t, env.MustRun("--json", "list").Stdout)
	assert.Equal(t, 15, list.Total)
	assert.Len(t, list.Orders, 10)
	assert.True(t, list.HasMore)
	assert.Equal(t, "r-2", list.Orders[0].ID)

	list = ParseJSON[listResult](t, env.MustRun("--json", "list", "--more", "1").Stdout)
	assert.Len(t, list.Orders, 15)
	assert.False(t, list.HasMore)

	list = ParseJSON[listResult](t, env.MustRun("--json", "list", "--status", "pending", "--customer", "ANA").Stdout)
	assert.Equal(t, 12, list.Total)
	for _, o := range list.Orders {
		assert.Equal(t, types.StatusPending, o.Status)
	}

	list = ParseJSON[listResult](t, env.MustRun("--json", "list", "--product", "Desk", "--delivery", "home").Stdout)
	assert.Zero(t, list.Total)
	assert.Empty(t, list.Orders)

	totals := ParseJSON[totalsResult](t, env.MustRun("--json", "totals").Stdout)
	require.Len(t, totals.Totals, 9)
	assert.Equal(t, 12, totals.Totals[0].Total)
	assert.Equal(t, 15, totals.Sum)
	assert.Equal(t, totals.Orders, totals.Sum)
}

func TestOrdersSurviveRestart(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")
	env.MustRun("import", env.WriteFile("orders.jsonl", dashboardOrders()))

	for range 2 {
		list := ParseJSON[listResult](t, env.MustRun("--json", "list", "--initial", "20").Stdout)
		assert.Equal(t, 15, list.Total)
	}
}

func TestExitCodes(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"version", []string{"version"}, 0},
		{"unknown command", []string{"nope"}, 1},
		{"missing file", []string{"import", "/does/not/exist.jsonl"}, 1},
		{"bad flag value", []string{"list", "--more", "x"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := env.Run(tt.args...)
			assert.Equal(t, tt.want, result.ExitCode, "stderr: %s", result.Stderr)
		})
	}

	result := env.Run("import", "/does/not/exist.jsonl")
	assert.Contains(t, result.Stderr, "storedesk:")
}
