package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"where-is-my-table/internal/models"
)

// chefRoster owns the kitchen staff and their open-order counts.
// Methods run under the engine's mutex.
type chefRoster struct {
	chefs []*models.Chef
}

func (r *chefRoster) create(name string) *models.Chef {
	chef := &models.Chef{
		ID:   "chef_" + uuid.NewString(),
		Name: name,
	}
	r.chefs = append(r.chefs, chef)
	return chef
}

func (r *chefRoster) byID(id string) *models.Chef {
	for _, c := range r.chefs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *chefRoster) delete(id string) error {
	for i, c := range r.chefs {
		if c.ID == id {
			r.chefs = append(r.chefs[:i], r.chefs[i+1:]...)
			return nil
		}
	}
	return models.ErrChefNotFound
}

// assign picks the least-loaded chef, breaking ties at random, and
// bumps their open-order count. Returns nil when the roster is empty.
func (r *chefRoster) assign(rnd *rand.Rand) *models.Chef {
	if len(r.chefs) == 0 {
		return nil
	}
	min := r.chefs[0].CurrentOrders
	for _, c := range r.chefs {
		if c.CurrentOrders < min {
			min = c.CurrentOrders
		}
	}
	var candidates []*models.Chef
	for _, c := range r.chefs {
		if c.CurrentOrders == min {
			candidates = append(candidates, c)
		}
	}
	chef := candidates[rnd.Intn(len(candidates))]
	chef.CurrentOrders++
	return chef
}

// completed drops the chef's open-order count when one of their
// orders reaches its terminal status.
func (r *chefRoster) completed(name string) {
	for _, c := range r.chefs {
		if c.Name == name && c.CurrentOrders > 0 {
			c.CurrentOrders--
			return
		}
	}
}

func (r *chefRoster) list() []models.Chef {
	out := make([]models.Chef, 0, len(r.chefs))
	for _, c := range r.chefs {
		out = append(out, *c)
	}
	return out
}

// customerBook tracks walk-in customers, deduplicated by phone.
// Methods run under the engine's mutex.
type customerBook struct {
	customers []*models.Customer
	byPhone   map[string]*models.Customer
}

func newCustomerBook() customerBook {
	return customerBook{byPhone: make(map[string]*models.Customer)}
}

// upsert records one more order for the customer with this phone,
// creating the record on first contact.
func (b *customerBook) upsert(name, phone string, address *string) *models.Customer {
	if c, ok := b.byPhone[phone]; ok {
		c.OrdersCount++
		return c
	}
	c := &models.Customer{
		ID:          "customer_" + uuid.NewString(),
		Name:        name,
		Phone:       phone,
		OrdersCount: 1,
	}
	if address != nil {
		v := *address
		c.Address = &v
	}
	b.customers = append(b.customers, c)
	b.byPhone[phone] = c
	return c
}

func (b *customerBook) get(phone string) (*models.Customer, bool) {
	c, ok := b.byPhone[phone]
	return c, ok
}

func (b *customerBook) list() []models.Customer {
	out := make([]models.Customer, 0, len(b.customers))
	for _, c := range b.customers {
		v := *c
		if c.Address != nil {
			a := *c.Address
			v.Address = &a
		}
		out = append(out, v)
	}
	return out
}
