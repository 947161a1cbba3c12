package confirmation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/pkg/enums"
	"github.com/shoplite/storefront/pkg/types"
)

func TestViewConfirmedOrder(t *testing.T) {
	t.Parallel()

	view := NewView(Payload{
		OrderID:       "SL-1A2B3C4D",
		Status:        enums.OrderStatusConfirmed,
		Total:         decimal.NewFromInt(25),
		PaymentMethod: enums.PaymentMethodJazzCash,
		Delivery:      types.DeliveryDetails{Name: "Ayesha Khan"},
		Items: []types.CartItem{
			{ID: "p1", Quantity: 2},
			{ID: "p2", Quantity: 1},
		},
	})

	if view.Headline != "Order confirmed" {
		t.Fatalf("unexpected headline %q", view.Headline)
	}
	if !strings.Contains(view.Message, "SL-1A2B3C4D") {
		t.Fatalf("message must carry the order id, got %q", view.Message)
	}
	if view.Total != "25.00" {
		t.Fatalf("expected 25.00, got %q", view.Total)
	}
	if view.Method != "jazzcash" || view.Recipient != "Ayesha Khan" || view.ItemCount != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestViewPendingOrder(t *testing.T) {
	t.Parallel()

	view := NewView(Payload{
		OrderID: "TEMP-abc",
		Status:  enums.OrderStatusPending,
	})

	if view.Headline != "Order received" {
		t.Fatalf("unexpected headline %q", view.Headline)
	}
	if !strings.Contains(view.Message, "pending review") {
		t.Fatalf("pending message must flag the review, got %q", view.Message)
	}
}

func TestViewFallbacks(t *testing.T) {
	t.Parallel()

	view := NewView(Payload{})

	if view.OrderID != "unavailable" {
		t.Fatalf("expected order id fallback, got %q", view.OrderID)
	}
	if view.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending fallback, got %s", view.Status)
	}
	if view.Method != "not recorded" {
		t.Fatalf("expected method fallback, got %q", view.Method)
	}
	if view.Recipient != "customer" {
		t.Fatalf("expected recipient fallback, got %q", view.Recipient)
	}
	if view.Total != "0.00" {
		t.Fatalf("expected zero total, got %q", view.Total)
	}
	if view.ItemCount != 0 {
		t.Fatalf("expected zero items, got %d", view.ItemCount)
	}
}

func TestViewInvalidStatusFallsBackToPending(t *testing.T) {
	t.Parallel()

	view := NewView(Payload{OrderID: "SL-1", Status: enums.OrderStatus("shipped")})
	if view.Status != enums.OrderStatusPending {
		t.Fatalf("unknown statuses must render as pending, got %s", view.Status)
	}
	if view.Headline != "Order received" {
		t.Fatalf("unexpected headline %q", view.Headline)
	}
}
