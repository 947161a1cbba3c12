package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/types"
)

func validDelivery() types.DeliveryDetails {
	return types.DeliveryDetails{
		Name:       "Ayesha Khan",
		Email:      "ayesha@example.com",
		Address:    "12 Mall Road",
		City:       "Lahore",
		PostalCode: "54000",
		Phone:      "03001234567",
	}
}

func TestComposeFreezesCartSnapshot(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{
		{ID: "p1", Name: "One", Price: decimal.NewFromInt(10), Quantity: 2},
		{ID: "p2", Name: "Two", Price: decimal.NewFromInt(5), Quantity: 1},
	}

	draft, err := Compose(validDelivery(), cart, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(draft.Items) != 2 || draft.BuyNow {
		t.Fatalf("unexpected draft: %+v", draft)
	}
	if !draft.Total.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected total 25, got %s", draft.Total)
	}

	// The draft must be a snapshot, not a live view of the cart.
	cart[0].Quantity = 99
	if draft.Items[0].Quantity != 2 {
		t.Fatalf("draft mutated by later cart change: %+v", draft.Items[0])
	}
}

func TestComposeBuyNowBypassesCart(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{
		{ID: "p1", Name: "One", Price: decimal.NewFromInt(10), Quantity: 3},
	}
	buyNow := &types.CartItem{ID: "p9", Name: "Nine", Price: decimal.NewFromInt(7)}

	draft, err := Compose(validDelivery(), cart, buyNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !draft.BuyNow {
		t.Fatal("expected a buy-now draft")
	}
	if len(draft.Items) != 1 || draft.Items[0].ID != "p9" {
		t.Fatalf("cart items must not leak into a buy-now draft: %+v", draft.Items)
	}
	if draft.Items[0].Quantity != 1 {
		t.Fatalf("expected quantity floored to 1, got %d", draft.Items[0].Quantity)
	}
	if !draft.Total.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("expected total 7, got %s", draft.Total)
	}
}

func TestComposeRejectsIncompleteDelivery(t *testing.T) {
	t.Parallel()

	delivery := validDelivery()
	delivery.Email = ""
	delivery.City = ""

	_, err := Compose(delivery, []types.CartItem{{ID: "p1", Price: decimal.NewFromInt(1), Quantity: 1}}, nil)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	coded := pkgerrors.As(err)
	if coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", coded.Code())
	}
	details, ok := coded.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected per-field details, got %v", coded.Details())
	}
	if details["email"] == "" || details["city"] == "" {
		t.Fatalf("expected email and city in details, got %v", details)
	}
}

func TestComposeRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	_, err := Compose(validDelivery(), nil, nil)
	if err == nil {
		t.Fatal("expected an error for an empty item set")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", pkgerrors.As(err).Code())
	}
}

func TestComposeRejectsNonPositiveTotal(t *testing.T) {
	t.Parallel()

	cart := []types.CartItem{
		{ID: "p1", Name: "Freebie", Price: decimal.Zero, Quantity: 2},
	}
	_, err := Compose(validDelivery(), cart, nil)
	if err == nil {
		t.Fatal("expected an error for a zero total")
	}
}
