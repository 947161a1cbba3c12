package confirmation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/pkg/enums"
	"github.com/shoplite/storefront/pkg/types"
)

// Payload is the outcome state handed over from the payment step. Any
// field may be missing when the flow arrived here via the degraded
// bypass path.
type Payload struct {
	OrderID       string
	Status        enums.OrderStatus
	Total         decimal.Decimal
	PaymentMethod enums.PaymentMethod
	Delivery      types.DeliveryDetails
	Items         []types.CartItem
}

// View is the fully resolved display model. Construction never fails;
// missing payload fields fall back to safe display values.
type View struct {
	OrderID   string
	Status    enums.OrderStatus
	Headline  string
	Message   string
	Total     string
	Method    string
	Recipient string
	ItemCount int
}

const (
	fallbackOrderID   = "unavailable"
	fallbackRecipient = "customer"
)

// NewView renders the outcome. It performs no network calls and mutates
// nothing.
func NewView(p Payload) View {
	view := View{
		OrderID:   strings.TrimSpace(p.OrderID),
		Status:    p.Status,
		Total:     p.Total.StringFixed(2),
		Method:    string(p.PaymentMethod),
		Recipient: strings.TrimSpace(p.Delivery.Name),
		ItemCount: len(p.Items),
	}

	if view.OrderID == "" {
		view.OrderID = fallbackOrderID
	}
	if !view.Status.IsValid() {
		view.Status = enums.OrderStatusPending
	}
	if view.Method == "" {
		view.Method = "not recorded"
	}
	if view.Recipient == "" {
		view.Recipient = fallbackRecipient
	}

	switch view.Status {
	case enums.OrderStatusConfirmed:
		view.Headline = "Order confirmed"
		view.Message = "Your order " + view.OrderID + " has been placed."
	default:
		view.Headline = "Order received"
		view.Message = "Your order " + view.OrderID + " is pending review. We will follow up once it is verified."
	}

	return view
}
