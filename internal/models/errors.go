package models

import "fmt"

// ErrorKind classifies an engine failure so callers can decide whether
// to correct their input, refresh state, or give up.
type ErrorKind string

const (
	// KindValidation marks bad or missing input. Never retried; the
	// end user has to correct the request.
	KindValidation ErrorKind = "validation"
	// KindConflict marks a concurrent-state race. The caller should
	// re-fetch and retry with fresh state.
	KindConflict ErrorKind = "conflict"
	// KindCapacity marks a hard business limit.
	KindCapacity ErrorKind = "capacity"
	// KindNotFound marks a reference to an entity that no longer exists.
	KindNotFound ErrorKind = "not_found"
)

// Error is a typed engine failure.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches two engine errors by code, so dynamically built errors
// still compare equal to their sentinel via errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyCart         = &Error{Kind: KindValidation, Code: "empty_cart", Message: "order must contain at least one item"}
	ErrTableRequired     = &Error{Kind: KindValidation, Code: "table_required", Message: "table_number is required for dinein orders"}
	ErrAddressRequired   = &Error{Kind: KindValidation, Code: "address_required", Message: "customer_address is required for takeaway orders"}
	ErrTableUnavailable  = &Error{Kind: KindConflict, Code: "table_unavailable", Message: "table is already reserved"}
	ErrAlreadyReserved   = &Error{Kind: KindConflict, Code: "already_reserved", Message: "table is already reserved"}
	ErrTableReserved     = &Error{Kind: KindConflict, Code: "table_reserved", Message: "cannot delete a reserved table"}
	ErrIllegalTransition = &Error{Kind: KindConflict, Code: "illegal_transition", Message: "illegal order status transition"}
	ErrCapacityExceeded  = &Error{Kind: KindCapacity, Code: "capacity_exceeded", Message: "no more tables can be created: the restaurant is limited to 30"}
	ErrTableNotFound     = &Error{Kind: KindNotFound, Code: "table_not_found", Message: "table not found"}
	ErrOrderNotFound     = &Error{Kind: KindNotFound, Code: "order_not_found", Message: "order not found"}
	ErrChefNotFound      = &Error{Kind: KindNotFound, Code: "chef_not_found", Message: "chef not found"}
	ErrCustomerNotFound  = &Error{Kind: KindNotFound, Code: "customer_not_found", Message: "customer not found"}
	ErrLineNotFound      = &Error{Kind: KindNotFound, Code: "line_not_found", Message: "cart line not found"}
)

// IllegalTransition builds an ErrIllegalTransition with the offending
// pair of statuses in the message.
func IllegalTransition(from, to OrderStatus) *Error {
	return &Error{
		Kind:    KindConflict,
		Code:    ErrIllegalTransition.Code,
		Message: fmt.Sprintf("cannot move order status from %s to %s", from, to),
	}
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "invalid_" + field,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}
