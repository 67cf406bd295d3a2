package models

// TaxRate is applied to the item subtotal of every order.
const TaxRate = 0.05

// TakeawayDeliveryCharge is a flat surcharge applied only to takeaway
// orders.
const TakeawayDeliveryCharge = 50.0

// Charges is the priced breakdown of a set of order lines.
type Charges struct {
	Subtotal       float64 `json:"subtotal"`
	Taxes          float64 `json:"taxes"`
	DeliveryCharge float64 `json:"delivery_charge"`
	GrandTotal     float64 `json:"grand_total"`
}

// ComputeCharges prices a frozen line list. It is a pure function:
// identical lines always produce identical charges.
func ComputeCharges(items []OrderLine, orderType OrderType) Charges {
	var c Charges
	for _, item := range items {
		c.Subtotal += item.Price * float64(item.Quantity)
	}
	c.Taxes = c.Subtotal * TaxRate
	if orderType == Takeaway {
		c.DeliveryCharge = TakeawayDeliveryCharge
	}
	c.GrandTotal = c.Subtotal + c.Taxes + c.DeliveryCharge
	return c
}

// PreparationMinutes sums the per-line preparation estimates.
func PreparationMinutes(items []OrderLine) int {
	total := 0
	for _, item := range items {
		total += item.PreparationTime * item.Quantity
	}
	return total
}

// ProcessingSeconds is the preparation estimate converted to seconds,
// the unit stored on the order.
func ProcessingSeconds(items []OrderLine) int {
	return PreparationMinutes(items) * 60
}
