package enums

import "testing"

func TestOrderStatusIsValid(t *testing.T) {
	t.Parallel()

	if !OrderStatusConfirmed.IsValid() || !OrderStatusPending.IsValid() {
		t.Fatal("canonical statuses must be valid")
	}
	if OrderStatus("shipped").IsValid() || OrderStatus("").IsValid() {
		t.Fatal("unknown statuses must be invalid")
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	status, err := ParseOrderStatus("pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != OrderStatusPending {
		t.Fatalf("expected pending, got %s", status)
	}

	if _, err := ParseOrderStatus("cancelled"); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
}
