package models

import "time"

// OrderType represents the type of an order
type OrderType string

const (
	DineIn   OrderType = "dinein"
	Takeaway OrderType = "takeaway"
)

// Valid reports whether the order type is one of the known values.
func (t OrderType) Valid() bool {
	return t == DineIn || t == Takeaway
}

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusDone       OrderStatus = "done"
)

var statusRank = map[OrderStatus]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusDone:       2,
}

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether next strictly follows s in the
// pending -> processing -> done order. Skips and reversals are not
// allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return statusRank[next] == statusRank[s]+1
}

// MenuItemRef is an immutable snapshot of a catalog item as it was at
// the moment it entered a cart. The live catalog item may change later;
// the snapshot never does.
type MenuItemRef struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Price                  float64 `json:"price"`
	AveragePreparationTime int     `json:"average_preparation_time"`
}

// OrderLine is one frozen line of a submitted order.
type OrderLine struct {
	MenuItemID          string  `json:"menu_item_id" db:"menu_item_id"`
	MenuItemName        string  `json:"menu_item_name" db:"menu_item_name"`
	Quantity            int     `json:"quantity" db:"quantity"`
	Price               float64 `json:"price" db:"price"`
	PreparationTime     int     `json:"preparation_time" db:"preparation_time"`
	CookingInstructions *string `json:"cooking_instructions,omitempty" db:"cooking_instructions"`
}

// Order is created once at submission. Only Status changes afterwards;
// the line list and charges are immutable.
type Order struct {
	ID              string      `json:"id" db:"id"`
	Number          string      `json:"order_number" db:"number"`
	Type            OrderType   `json:"type" db:"type"`
	TableNumber     *int        `json:"table_number,omitempty" db:"table_number"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	CustomerPhone   string      `json:"customer_phone" db:"customer_phone"`
	CustomerAddress *string     `json:"customer_address,omitempty" db:"customer_address"`
	Items           []OrderLine `json:"items"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount"`
	Taxes           float64     `json:"taxes" db:"taxes"`
	DeliveryCharge  float64     `json:"delivery_charge" db:"delivery_charge"`
	GrandTotal      float64     `json:"grand_total" db:"grand_total"`
	ProcessingTime  int         `json:"processing_time" db:"processing_time"`
	Status          OrderStatus `json:"status" db:"status"`
	AssignedChef    *string     `json:"assigned_chef,omitempty" db:"assigned_chef"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// CloneLines deep-copies a line list, including the optional
// instruction pointers.
func CloneLines(items []OrderLine) []OrderLine {
	out := make([]OrderLine, len(items))
	copy(out, items)
	for i, it := range items {
		if it.CookingInstructions != nil {
			v := *it.CookingInstructions
			out[i].CookingInstructions = &v
		}
	}
	return out
}

// Clone returns a deep copy, so readers never share slices or pointers
// with the store's copy.
func (o *Order) Clone() Order {
	c := *o
	c.Items = CloneLines(o.Items)
	if o.TableNumber != nil {
		v := *o.TableNumber
		c.TableNumber = &v
	}
	if o.CustomerAddress != nil {
		v := *o.CustomerAddress
		c.CustomerAddress = &v
	}
	if o.AssignedChef != nil {
		v := *o.AssignedChef
		c.AssignedChef = &v
	}
	return c
}

// OrderView is the polling shape of an order. RemainingTime is a
// static estimate in seconds while the order is processing, zero once
// it is done. DisplayStatus is derived from status and type and is
// never stored.
type OrderView struct {
	Order
	RemainingTime int    `json:"remaining_time"`
	DisplayStatus string `json:"display_status"`
}

// View derives the read-only listing shape of the order.
func (o *Order) View() OrderView {
	v := OrderView{Order: o.Clone()}
	if o.Status == StatusProcessing {
		v.RemainingTime = o.ProcessingTime
	}
	v.DisplayStatus = string(o.Status)
	if o.Status == StatusDone {
		if o.Type == DineIn {
			v.DisplayStatus = "served"
		} else {
			v.DisplayStatus = "awaiting pickup"
		}
	}
	return v
}
