package cartstore

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/pkg/types"
)

func TestAddIncrementsExistingLine(t *testing.T) {
	t.Parallel()

	store := New()
	item := types.CartItem{ID: "p1", Name: "One", Price: decimal.NewFromInt(10), Quantity: 1}
	store.Add("guest", item)
	store.Add("guest", item)

	items := store.Items("guest")
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddFloorsQuantity(t *testing.T) {
	t.Parallel()

	store := New()
	store.Add("guest", types.CartItem{ID: "p1", Name: "One", Quantity: 0})

	items := store.Items("guest")
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected quantity floored to 1, got %+v", items)
	}
}

func TestUpdateZeroRemoves(t *testing.T) {
	t.Parallel()

	store := New()
	store.Add("guest", types.CartItem{ID: "p1", Name: "One", Quantity: 2})

	if !store.Update("guest", "p1", 0) {
		t.Fatal("update must report the line existed")
	}
	if items := store.Items("guest"); len(items) != 0 {
		t.Fatalf("expected empty cart, got %+v", items)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	t.Parallel()

	store := New()
	if store.Update("guest", "missing", 3) {
		t.Fatal("updating an unknown line must report false")
	}
	if store.Remove("guest", "missing") {
		t.Fatal("removing an unknown line must report false")
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	t.Parallel()

	store := New()
	store.Add("alice", types.CartItem{ID: "p1", Name: "One", Quantity: 1})
	store.Add("bob", types.CartItem{ID: "p2", Name: "Two", Quantity: 1})

	store.Clear("alice")

	if items := store.Items("alice"); len(items) != 0 {
		t.Fatalf("expected alice's cart empty, got %+v", items)
	}
	if items := store.Items("bob"); len(items) != 1 || items[0].ID != "p2" {
		t.Fatalf("expected bob's cart untouched, got %+v", items)
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	t.Parallel()

	store := New()
	store.Add("guest", types.CartItem{ID: "p1", Name: "One", Quantity: 1})

	snapshot := store.Items("guest")
	snapshot[0].Quantity = 99

	if store.Items("guest")[0].Quantity != 1 {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}
