package enums

import "fmt"

// OrderStatus describes the outcome carried into the confirmation step.
type OrderStatus string

const (
	// OrderStatusConfirmed means the backend acknowledged the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusPending means the order was accepted locally while the
	// backend was unreachable or rejected the call with a non-auth error.
	OrderStatusPending OrderStatus = "pending"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPending,
}

// IsValid reports whether the value matches the canonical order status enum.
func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts the raw string to OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
