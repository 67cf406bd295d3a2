// Package cart implements the pre-submission cart for one customer
// session. It is pure in-memory bookkeeping: no I/O, no locking, owned
// by exactly one session at a time.
package cart

import (
	"github.com/google/uuid"

	"where-is-my-table/internal/models"
)

// Line is one mutable cart line: a frozen menu item snapshot plus a
// quantity the customer can still change.
type Line struct {
	ID                  string             `json:"id"`
	Item                models.MenuItemRef `json:"item"`
	Quantity            int                `json:"quantity"`
	CookingInstructions string             `json:"cooking_instructions,omitempty"`
}

// Totals is the priced view of the cart for a given order type.
type Totals struct {
	Subtotal           float64 `json:"subtotal"`
	Taxes              float64 `json:"taxes"`
	DeliveryCharge     float64 `json:"delivery_charge"`
	GrandTotal         float64 `json:"grand_total"`
	PreparationMinutes int     `json:"preparation_minutes"`
}

// Cart accumulates lines until the session submits or resets.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds a menu item to the cart. If a line for the same menu
// item already exists its quantity is incremented, otherwise a new
// line with quantity 1 is appended.
func (c *Cart) AddItem(item models.MenuItemRef) Line {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}
	line := Line{
		ID:       uuid.NewString(),
		Item:     item,
		Quantity: 1,
	}
	c.lines = append(c.lines, line)
	return line
}

// SetInstructions attaches free-text cooking instructions to a line.
func (c *Cart) SetInstructions(lineID, instructions string) error {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].CookingInstructions = instructions
			return nil
		}
	}
	return models.ErrLineNotFound
}

// AdjustQuantity changes a line's quantity by delta, clamping at zero
// by removing the line. It returns true when the adjustment emptied
// the cart; the caller must treat that as the end of the ordering flow
// and send the customer back to browsing.
func (c *Cart) AdjustQuantity(lineID string, delta int) (emptied bool, err error) {
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return len(c.lines) == 0, nil
	}
	return false, models.ErrLineNotFound
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Reset drops all lines, ending the session's ordering flow.
func (c *Cart) Reset() {
	c.lines = nil
}

// OrderLines freezes the cart into the immutable line list of an order
// submission.
func (c *Cart) OrderLines() []models.OrderLine {
	out := make([]models.OrderLine, 0, len(c.lines))
	for _, l := range c.lines {
		line := models.OrderLine{
			MenuItemID:      l.Item.ID,
			MenuItemName:    l.Item.Name,
			Quantity:        l.Quantity,
			Price:           l.Item.Price,
			PreparationTime: l.Item.AveragePreparationTime,
		}
		if l.CookingInstructions != "" {
			v := l.CookingInstructions
			line.CookingInstructions = &v
		}
		out = append(out, line)
	}
	return out
}

// ComputeTotals prices the cart for the given order type. The
// preparation estimate is only meaningful for takeaway display; dinein
// timing decisions never use it.
func (c *Cart) ComputeTotals(orderType models.OrderType) Totals {
	lines := c.OrderLines()
	charges := models.ComputeCharges(lines, orderType)
	return Totals{
		Subtotal:           charges.Subtotal,
		Taxes:              charges.Taxes,
		DeliveryCharge:     charges.DeliveryCharge,
		GrandTotal:         charges.GrandTotal,
		PreparationMinutes: models.PreparationMinutes(lines),
	}
}
