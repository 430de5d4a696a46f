package orders

import (
	"strings"

	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// Filter returns the orders satisfying every active criterion in c, in their
// original relative order. The input slice is not modified. An empty input
// yields an empty, non-nil result.
//
// c.SortBy does not reorder: SortNewest, the only recognized value, matches
// the newest-first order sources already produce.
func Filter(orders []types.Order, c types.FilterCriteria) []types.Order {
	if len(orders) == 0 {
		return []types.Order{}
	}

	q := newQuery(c)
	out := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		if q.match(o) {
			out = append(out, o)
		}
	}
	return out
}

// Match reports whether o satisfies every active criterion in c.
func Match(o types.Order, c types.FilterCriteria) bool {
	return newQuery(c).match(o)
}

// query holds criteria with the customer needle lower-cased once.
type query struct {
	c        types.FilterCriteria
	customer string
}

func newQuery(c types.FilterCriteria) query {
	return query{c: c, customer: strings.ToLower(c.Customer)}
}

func (q query) match(o types.Order) bool {
	if q.c.Status != types.FilterAll && o.Status != q.c.Status {
		return false
	}
	if q.c.State != types.FilterAll && o.State != q.c.State {
		return false
	}
	if q.c.DeliveryType != types.FilterAll {
		if q.c.DeliveryType == types.DeliveryHome {
			if !o.Home {
				return false
			}
		} else if o.Home {
			return false
		}
	}
	if q.c.ProductData != types.FilterAll {
		if o.ProductData == nil || o.ProductData.Name != q.c.ProductData {
			return false
		}
	}
	if q.customer != "" {
		if !strings.Contains(strings.ToLower(o.Name), q.customer) &&
			!strings.Contains(strings.ToLower(o.Phone), q.customer) {
			return false
		}
	}
	return true
}
