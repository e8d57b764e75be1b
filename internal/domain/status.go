package domain

import "strings"

// OrderStatus is the closed set of order lifecycle states.
// The zero value is not a valid status.
type OrderStatus string

// Canonical order statuses. These are the only values the backend
// accepts or reports.
const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

// orderStatuses indexes the canonical set by name for parsing.
var orderStatuses = map[string]OrderStatus{
	"CREATED":   StatusCreated,
	"PAID":      StatusPaid,
	"SHIPPED":   StatusShipped,
	"DELIVERED": StatusDelivered,
}

// String returns the canonical name of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the canonical values.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[string(s)]
	return ok
}

// ParseOrderStatus converts free text into an OrderStatus. Comparison
// is case-insensitive against the canonical names. An unrecognized
// input is the caller's error, never a default:
//
//	ParseOrderStatus("shipped") == StatusShipped
//	ParseOrderStatus("CANCELLED") -> ValidationError
func ParseOrderStatus(text string) (OrderStatus, error) {
	status, ok := orderStatuses[strings.ToUpper(strings.TrimSpace(text))]
	if !ok {
		return "", NewValidationError("newStatus", "invalid order status: "+text)
	}

	return status, nil
}
