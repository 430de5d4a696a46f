package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCriteria(t *testing.T) {
	c := DefaultCriteria()

	assert.Equal(t, FilterAll, c.Status)
	assert.Equal(t, FilterAll, c.ProductData)
	assert.Equal(t, FilterAll, c.State)
	assert.Equal(t, FilterAll, c.DeliveryType)
	assert.Empty(t, c.Customer)
	assert.Equal(t, SortNewest, c.SortBy)
	assert.True(t, c.IsDefault())
	assert.Empty(t, c.Active())
}

func TestFilterCriteriaActive(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*FilterCriteria)
		want   []string
	}{
		{
			name:   "status only",
			modify: func(c *FilterCriteria) { c.Status = StatusPending },
			want:   []string{AxisStatus},
		},
		{
			name:   "customer only",
			modify: func(c *FilterCriteria) { c.Customer = "ann" },
			want:   []string{AxisCustomer},
		},
		{
			name: "every axis",
			modify: func(c *FilterCriteria) {
				c.Status = StatusReady
				c.State = "paid"
				c.DeliveryType = DeliveryHome
				c.ProductData = "Mug"
				c.Customer = "555"
			},
			want: []string{AxisStatus, AxisState, AxisDelivery, AxisProduct, AxisCustomer},
		},
		{
			name:   "sortBy never counts as an axis",
			modify: func(c *FilterCriteria) { c.SortBy = "oldest" },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			tt.modify(&c)
			assert.Equal(t, tt.want, c.Active())
		})
	}
}

func TestFilterCriteriaIsDefault(t *testing.T) {
	c := DefaultCriteria()
	c.SortBy = "oldest"
	assert.False(t, c.IsDefault())

	assert.False(t, FilterCriteria{}.IsDefault(), "zero value is not the default record")
}

func TestFilterCriteriaJSONNames(t *testing.T) {
	var c FilterCriteria
	err := json.Unmarshal([]byte(`{"status":"ready","productData":"Mug","customer":"an","state":"paid","delevetyType":"home","sortBy":"newest"}`), &c)
	require.NoError(t, err)

	assert.Equal(t, FilterCriteria{
		Status:       StatusReady,
		ProductData:  "Mug",
		Customer:     "an",
		State:        "paid",
		DeliveryType: DeliveryHome,
		SortBy:       SortNewest,
	}, c)
}
