package models

import "fmt"

// SubmitOrderRequest is the payload a customer session produces when a
// cart is submitted.
type SubmitOrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress *string     `json:"customer_address,omitempty"`
	Type            string      `json:"type"`
	TableNumber     *int        `json:"table_number,omitempty"`
	Items           []OrderLine `json:"items"`
}

// Validate checks the submission against order-type rules. It covers
// everything that does not need registry state; table availability is
// checked inside the engine's critical section.
func (req *SubmitOrderRequest) Validate() error {
	if err := validateCustomerName(req.CustomerName); err != nil {
		return err
	}
	if req.CustomerPhone == "" {
		return NewValidationError("customer_phone", "customer phone is required")
	}

	orderType := OrderType(req.Type)
	if !orderType.Valid() {
		return NewValidationError("type", "order type must be one of: dinein, takeaway")
	}

	switch orderType {
	case DineIn:
		if req.TableNumber == nil {
			return ErrTableRequired
		}
		if *req.TableNumber < 1 {
			return NewValidationError("table_number", "table number must be positive")
		}
	case Takeaway:
		if req.CustomerAddress == nil || *req.CustomerAddress == "" {
			return ErrAddressRequired
		}
	}

	return validateItems(req.Items)
}

// CreateTableRequest is the staff request to add a table.
type CreateTableRequest struct {
	ChairCount int     `json:"chair_count"`
	Name       *string `json:"name,omitempty"`
}

// Validate checks the table creation payload.
func (req *CreateTableRequest) Validate() error {
	if req.ChairCount < 1 {
		return NewValidationError("chair_count", "chair count must be at least 1")
	}
	if req.ChairCount > 20 {
		return NewValidationError("chair_count", "chair count must not exceed 20")
	}
	return nil
}

// UpdateOrderStatusRequest is the staff request to advance an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that the requested status is a known value.
func (req *UpdateOrderStatusRequest) Validate() error {
	if !OrderStatus(req.Status).Valid() {
		return NewValidationError("status", "status must be one of: pending, processing, done")
	}
	return nil
}

// CreateChefRequest is the staff request to add or rename a chef.
type CreateChefRequest struct {
	Name string `json:"name"`
}

// Validate checks the chef payload.
func (req *CreateChefRequest) Validate() error {
	return validateCustomerName(req.Name)
}

func validateCustomerName(name string) error {
	if name == "" {
		return NewValidationError("name", "name is required")
	}
	if len(name) > 100 {
		return NewValidationError("name", "name must be less than 100 characters")
	}
	return nil
}

func validateItems(items []OrderLine) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	for i, item := range items {
		if err := validateItem(item, i); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item OrderLine, index int) error {
	prefix := fmt.Sprintf("items[%d]", index)
	if item.MenuItemName == "" {
		return NewValidationError(prefix+".menu_item_name", "item name is required")
	}
	if item.Quantity < 1 {
		return NewValidationError(prefix+".quantity", "item quantity must be at least 1")
	}
	if item.Price <= 0 {
		return NewValidationError(prefix+".price", "item price must be greater than 0")
	}
	if item.PreparationTime < 0 {
		return NewValidationError(prefix+".preparation_time", "item preparation time cannot be negative")
	}
	return nil
}
