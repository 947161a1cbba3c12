package enums

import "testing"

func TestPaymentMethodIsValid(t *testing.T) {
	t.Parallel()

	for _, method := range []PaymentMethod{PaymentMethodCOD, PaymentMethodJazzCash, PaymentMethodEasypaisa, PaymentMethodBank} {
		if !method.IsValid() {
			t.Fatalf("%s must be valid", method)
		}
	}
	for _, raw := range []string{"", "paypal", "COD", "Jazzcash"} {
		if PaymentMethod(raw).IsValid() {
			t.Fatalf("%q must be invalid", raw)
		}
	}
}

func TestPaymentMethodRequiresReference(t *testing.T) {
	t.Parallel()

	if PaymentMethodCOD.RequiresReference() {
		t.Fatal("cash on delivery must not need a reference")
	}
	for _, method := range []PaymentMethod{PaymentMethodJazzCash, PaymentMethodEasypaisa, PaymentMethodBank} {
		if !method.RequiresReference() {
			t.Fatalf("%s must need a reference", method)
		}
	}
	if PaymentMethod("paypal").RequiresReference() {
		t.Fatal("invalid methods must not claim a reference requirement")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	t.Parallel()

	method, err := ParsePaymentMethod("easypaisa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != PaymentMethodEasypaisa {
		t.Fatalf("expected easypaisa, got %s", method)
	}

	if _, err := ParsePaymentMethod("stripe"); err == nil {
		t.Fatal("expected an error for an unknown method")
	}
}
