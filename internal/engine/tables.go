package engine

import (
	"fmt"

	"where-is-my-table/internal/models"
)

// MaxTables is the hard limit on how many tables the restaurant can
// register at once.
const MaxTables = 30

// tableRegistry owns the physical table set. It carries no lock of its
// own; every method runs under the engine's mutex.
type tableRegistry struct {
	tables []*models.Table
}

func (r *tableRegistry) create(req models.CreateTableRequest) (*models.Table, error) {
	if len(r.tables) >= MaxTables {
		return nil, models.ErrCapacityExceeded
	}
	// Numbers are stable identifiers: deleted numbers are never
	// reused, so the next number is one past the highest ever issued.
	number := 0
	for _, t := range r.tables {
		if t.Number > number {
			number = t.Number
		}
	}
	number++
	table := &models.Table{
		ID:         fmt.Sprintf("table_%d", number),
		Number:     number,
		ChairCount: req.ChairCount,
		Name:       req.Name,
		Status:     models.TableAvailable,
	}
	r.tables = append(r.tables, table)
	return table, nil
}

func (r *tableRegistry) byID(id string) *models.Table {
	for _, t := range r.tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *tableRegistry) byNumber(number int) *models.Table {
	for _, t := range r.tables {
		if t.Number == number {
			return t
		}
	}
	return nil
}

func (r *tableRegistry) delete(id string) error {
	for i, t := range r.tables {
		if t.ID != id {
			continue
		}
		if t.Status == models.TableReserved {
			return models.ErrTableReserved
		}
		r.tables = append(r.tables[:i], r.tables[i+1:]...)
		return nil
	}
	return models.ErrTableNotFound
}

// reserve claims the table exclusively. Reserving an already reserved
// table fails; there is no implicit release.
func (r *tableRegistry) reserve(id string) error {
	t := r.byID(id)
	if t == nil {
		return models.ErrTableNotFound
	}
	if t.Status == models.TableReserved {
		return models.ErrAlreadyReserved
	}
	t.Status = models.TableReserved
	return nil
}

// release frees the table. Releasing an available table is a no-op.
func (r *tableRegistry) release(id string) error {
	t := r.byID(id)
	if t == nil {
		return models.ErrTableNotFound
	}
	t.Status = models.TableAvailable
	return nil
}

// list returns value copies of all tables in creation order.
func (r *tableRegistry) list() []models.Table {
	out := make([]models.Table, 0, len(r.tables))
	for _, t := range r.tables {
		c := *t
		if t.Name != nil {
			v := *t.Name
			c.Name = &v
		}
		out = append(out, c)
	}
	return out
}
