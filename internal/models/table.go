package models

// TableStatus represents the reservation state of a table
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

// Table is one physical table in the dining room. The display number
// is a stable identifier: deleting a table never renumbers the rest.
type Table struct {
	ID         string      `json:"id" db:"id"`
	Number     int         `json:"number" db:"number"`
	ChairCount int         `json:"chair_count" db:"chair_count"`
	Name       *string     `json:"name,omitempty" db:"name"`
	Status     TableStatus `json:"status" db:"status"`
}

// Chef is a kitchen staff member with a live count of orders currently
// assigned to them.
type Chef struct {
	ID            string `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CurrentOrders int    `json:"current_orders" db:"current_orders"`
}

// Customer is a walk-in customer, deduplicated by phone number.
type Customer struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Phone       string  `json:"phone" db:"phone"`
	Address     *string `json:"address,omitempty" db:"address"`
	OrdersCount int     `json:"orders_count" db:"orders_count"`
}
