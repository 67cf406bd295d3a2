package engine

import "where-is-my-table/internal/models"

// orderStore owns the order records. Orders are kept in creation
// order so positional "order number" displays stay deterministic
// across repeated polls. Methods run under the engine's mutex.
type orderStore struct {
	orders []*models.Order
	byID   map[string]*models.Order
}

func newOrderStore() orderStore {
	return orderStore{byID: make(map[string]*models.Order)}
}

func (s *orderStore) add(o *models.Order) {
	s.orders = append(s.orders, o)
	s.byID[o.ID] = o
}

func (s *orderStore) get(id string) (*models.Order, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// list returns read-only views of the orders, optionally filtered by
// status and type. Unknown filter values simply match nothing.
func (s *orderStore) list(status, orderType string) []models.OrderView {
	out := make([]models.OrderView, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		if orderType != "" && string(o.Type) != orderType {
			continue
		}
		out = append(out, o.View())
	}
	return out
}
