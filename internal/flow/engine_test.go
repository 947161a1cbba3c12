package flow

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/api/routes"
	"github.com/shoplite/storefront/internal/cartstore"
	"github.com/shoplite/storefront/pkg/config"
	"github.com/shoplite/storefront/pkg/enums"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/types"
)

// Boots the development backend and walks the whole flow through it:
// session, cart sync, checkout, payment, confirmation.
func TestEngineEndToEnd(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})

	backendCfg := &config.Config{}
	backendCfg.DevServer.AllowedOrigins = []string{"http://localhost:3000"}
	carts := cartstore.New()
	backend := httptest.NewServer(routes.NewRouter(backendCfg, logg, carts))
	defer backend.Close()

	cfg := &config.Config{}
	cfg.API.BaseURL = backend.URL
	cfg.Session.Path = filepath.Join(t.TempDir(), "session.db")

	engine, err := NewEngine(cfg, logg, nil)
	if err != nil {
		t.Fatalf("unexpected error booting engine: %v", err)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			t.Errorf("closing engine: %v", err)
		}
	}()

	ctx := context.Background()
	if err := engine.Sessions.SetToken(ctx, "buyer-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	engine.Cart.Add(ctx, types.CartItem{ID: "p1", Name: "One", Price: decimal.NewFromInt(10)})
	engine.Cart.Add(ctx, types.CartItem{ID: "p1", Name: "One", Price: decimal.NewFromInt(10)})

	items := engine.Cart.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected synchronized cart: %+v", items)
	}
	if !engine.Cart.Total().Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected total 20, got %s", engine.Cart.Total())
	}

	ctrl := engine.Controller
	if err := ctrl.StartCheckout(ctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctrl.SubmitDelivery(ctx, types.DeliveryDetails{
		Name:       "Ayesha Khan",
		Email:      "ayesha@example.com",
		Address:    "12 Mall Road",
		City:       "Lahore",
		PostalCode: "54000",
		Phone:      "03001234567",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctrl.ChooseMethod(enums.PaymentMethodCOD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ctrl.CanSubmit() {
		t.Fatal("expected submission enabled")
	}

	view, err := ctrl.SubmitOrder(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(view.OrderID, "SL-") {
		t.Fatalf("expected a backend order number, got %q", view.OrderID)
	}
	if view.Status != enums.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", view.Status)
	}

	if remote := carts.Items("buyer-token"); len(remote) != 0 {
		t.Fatalf("expected remote cart cleared, got %+v", remote)
	}
	if local := engine.Cart.Items(); len(local) != 0 {
		t.Fatalf("expected local cart cleared, got %+v", local)
	}
}

func TestNewEngineRequiresDependencies(t *testing.T) {
	t.Parallel()

	logg := logger.New(logger.Options{ServiceName: "test"})

	if _, err := NewEngine(nil, logg, nil); err == nil {
		t.Fatal("expected an error without config")
	}

	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.Session.Path = "session.db"
	if _, err := NewEngine(cfg, nil, nil); err == nil {
		t.Fatal("expected an error without a logger")
	}
}
