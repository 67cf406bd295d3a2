// Package engine implements the order and table lifecycle store: one
// process-wide owner of tables, orders, chefs and customers, mutated
// through a single mutex so that reservations and status transitions
// stay atomic under concurrent staff stations.
package engine

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"where-is-my-table/internal/logger"
	"where-is-my-table/internal/models"
)

// firstOrderNumber is where human-facing order numbers start.
const firstOrderNumber = 108

// Engine is the shared lifecycle store. All exported methods are safe
// for concurrent use; no caller ever sees a half-written order or
// table. Nothing inside a critical section leaves process memory.
type Engine struct {
	mu  sync.RWMutex
	log *logger.Logger

	tables    tableRegistry
	orders    orderStore
	chefs     chefRoster
	customers customerBook

	nextOrderNumber int
	archive         chan<- models.Order
	now             func() time.Time
	rnd             *rand.Rand
}

// New creates an empty engine.
func New(log *logger.Logger) *Engine {
	return &Engine{
		log:             log,
		orders:          newOrderStore(),
		customers:       newCustomerBook(),
		nextOrderNumber: firstOrderNumber,
		now:             time.Now,
		rnd:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetArchiveSink attaches the channel completed orders are handed to.
// Must be called before the engine starts serving requests. The send
// is best-effort and never happens under the engine's lock.
func (e *Engine) SetArchiveSink(sink chan<- models.Order) {
	e.archive = sink
}

// CreateTable registers a new table with the next sequential number.
func (e *Engine) CreateTable(req models.CreateTableRequest) (models.Table, error) {
	if err := req.Validate(); err != nil {
		return models.Table{}, err
	}

	e.mu.Lock()
	table, err := e.tables.create(req)
	if err != nil {
		e.mu.Unlock()
		return models.Table{}, err
	}
	result := *table
	e.mu.Unlock()

	e.log.Info("table_created", "Table created", "", map[string]interface{}{
		"table_id": result.ID,
		"number":   result.Number,
	})
	return result, nil
}

// DeleteTable removes a table. Reserved tables cannot be deleted, and
// the remaining tables keep their numbers.
func (e *Engine) DeleteTable(id string) error {
	e.mu.Lock()
	err := e.tables.delete(id)
	e.mu.Unlock()

	if err == nil {
		e.log.Info("table_deleted", "Table deleted", "", map[string]interface{}{"table_id": id})
	}
	return err
}

// GetTable returns one table by ID.
func (e *Engine) GetTable(id string) (models.Table, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t := e.tables.byID(id)
	if t == nil {
		return models.Table{}, models.ErrTableNotFound
	}
	c := *t
	if t.Name != nil {
		v := *t.Name
		c.Name = &v
	}
	return c, nil
}

// ListTables returns a consistent snapshot of all tables in creation
// order.
func (e *Engine) ListTables() []models.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tables.list()
}

// SubmitOrder turns a validated submission into an immutable order.
// For dinein orders the table reservation and the order creation are
// one atomic unit: either both happen or neither does. The order
// starts processing immediately; there is no staff-review phase.
func (e *Engine) SubmitOrder(req models.SubmitOrderRequest) (models.Order, error) {
	if err := req.Validate(); err != nil {
		return models.Order{}, err
	}
	orderType := models.OrderType(req.Type)

	e.mu.Lock()

	// The availability check and the reservation happen under the same
	// lock, so two racing dinein submissions for one table cannot both
	// observe "available".
	var table *models.Table
	if orderType == models.DineIn {
		table = e.tables.byNumber(*req.TableNumber)
		if table == nil {
			e.mu.Unlock()
			return models.Order{}, models.ErrTableNotFound
		}
		if table.Status == models.TableReserved {
			e.mu.Unlock()
			return models.Order{}, models.ErrTableUnavailable
		}
	}

	// Nothing below can fail: the submission is now committed.
	items := models.CloneLines(req.Items)
	charges := models.ComputeCharges(items, orderType)

	order := &models.Order{
		ID:             "order_" + uuid.NewString(),
		Number:         strconv.Itoa(e.nextOrderNumber),
		Type:           orderType,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Items:          items,
		TotalAmount:    charges.Subtotal,
		Taxes:          charges.Taxes,
		DeliveryCharge: charges.DeliveryCharge,
		GrandTotal:     charges.GrandTotal,
		ProcessingTime: models.ProcessingSeconds(items),
		Status:         models.StatusProcessing,
		CreatedAt:      e.now().UTC(),
	}
	e.nextOrderNumber++

	if table != nil {
		table.Status = models.TableReserved
		n := table.Number
		order.TableNumber = &n
	}
	if req.CustomerAddress != nil {
		v := *req.CustomerAddress
		order.CustomerAddress = &v
	}
	if chef := e.chefs.assign(e.rnd); chef != nil {
		name := chef.Name
		order.AssignedChef = &name
	}
	e.customers.upsert(req.CustomerName, req.CustomerPhone, req.CustomerAddress)
	e.orders.add(order)

	result := order.Clone()
	e.mu.Unlock()

	e.log.Info("order_submitted", "Order submitted", "", map[string]interface{}{
		"order_id":     result.ID,
		"order_number": result.Number,
		"type":         string(result.Type),
		"grand_total":  result.GrandTotal,
	})
	return result, nil
}

// AdvanceStatus moves an order one step forward in the
// pending -> processing -> done machine. Stale, duplicate or backward
// requests fail with an illegal-transition conflict and leave the
// stored status untouched. When a dinein order reaches done its table
// is released; a takeaway order reaching done touches no table.
func (e *Engine) AdvanceStatus(orderID string, next models.OrderStatus) (models.OrderView, error) {
	e.mu.Lock()

	order, ok := e.orders.get(orderID)
	if !ok {
		e.mu.Unlock()
		return models.OrderView{}, models.ErrOrderNotFound
	}
	if !order.Status.CanAdvanceTo(next) {
		from := order.Status
		e.mu.Unlock()
		return models.OrderView{}, models.IllegalTransition(from, next)
	}
	order.Status = next

	var archived *models.Order
	if next == models.StatusDone {
		if order.Type == models.DineIn && order.TableNumber != nil {
			if t := e.tables.byNumber(*order.TableNumber); t != nil {
				t.Status = models.TableAvailable
			}
		}
		if order.AssignedChef != nil {
			e.chefs.completed(*order.AssignedChef)
		}
		c := order.Clone()
		archived = &c
	}

	view := order.View()
	e.mu.Unlock()

	if archived != nil && e.archive != nil {
		// Best-effort hand-off outside the lock; a saturated archiver
		// must not stall staff stations.
		select {
		case e.archive <- *archived:
		default:
			e.log.Error("archive_dropped", "Archive sink is full, completed order not journaled", "", nil,
				map[string]interface{}{"order_id": archived.ID})
		}
	}

	e.log.Info("status_advanced", "Order status advanced", "", map[string]interface{}{
		"order_id": orderID,
		"status":   string(next),
	})
	return view, nil
}

// ListOrders returns the orders in creation order, optionally filtered
// by status and type. Each call is an independent snapshot; two
// viewers polling at the same moment may see different states.
func (e *Engine) ListOrders(status, orderType string) []models.OrderView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.orders.list(status, orderType)
}

// GetOrder returns a single order view.
func (e *Engine) GetOrder(id string) (models.OrderView, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	order, ok := e.orders.get(id)
	if !ok {
		return models.OrderView{}, models.ErrOrderNotFound
	}
	return order.View(), nil
}

// CreateChef adds a chef to the roster.
func (e *Engine) CreateChef(req models.CreateChefRequest) (models.Chef, error) {
	if err := req.Validate(); err != nil {
		return models.Chef{}, err
	}

	e.mu.Lock()
	chef := e.chefs.create(req.Name)
	result := *chef
	e.mu.Unlock()

	e.log.Info("chef_created", "Chef created", "", map[string]interface{}{"chef_id": result.ID, "name": result.Name})
	return result, nil
}

// UpdateChef renames a chef.
func (e *Engine) UpdateChef(id string, req models.CreateChefRequest) (models.Chef, error) {
	if err := req.Validate(); err != nil {
		return models.Chef{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	chef := e.chefs.byID(id)
	if chef == nil {
		return models.Chef{}, models.ErrChefNotFound
	}
	chef.Name = req.Name
	return *chef, nil
}

// DeleteChef removes a chef from the roster.
func (e *Engine) DeleteChef(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.chefs.delete(id)
}

// ListChefs returns the roster in creation order.
func (e *Engine) ListChefs() []models.Chef {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.chefs.list()
}

// ListCustomers returns all known customers in first-contact order.
func (e *Engine) ListCustomers() []models.Customer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.customers.list()
}

// GetCustomerByPhone looks a customer up by phone number.
func (e *Engine) GetCustomerByPhone(phone string) (models.Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, ok := e.customers.get(phone)
	if !ok {
		return models.Customer{}, models.ErrCustomerNotFound
	}
	v := *c
	if c.Address != nil {
		a := *c.Address
		v.Address = &a
	}
	return v, nil
}
