package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/internal/flow"
	"github.com/shoplite/storefront/pkg/config"
	"github.com/shoplite/storefront/pkg/enums"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/types"
)

// storefront walks one full cart -> checkout -> payment -> confirmation
// flow against the configured backend. It exists to exercise the engine
// end to end from a shell; real integrations embed the flow packages.
func main() {
	var (
		login     = flag.String("login", "", "store a session token and exit")
		logout    = flag.Bool("logout", false, "clear the stored session and exit")
		productID = flag.String("product", "sku-demo-1", "product identifier to add")
		name      = flag.String("name", "Demo product", "product name")
		price     = flag.String("price", "10.00", "unit price")
		method    = flag.String("method", string(enums.PaymentMethodCOD), "payment method")
		reference = flag.String("ref", "", "transaction reference for wallet methods")
	)
	flag.Parse()

	logg := logger.New(logger.Options{ServiceName: "storefront"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	engine, err := flow.NewEngine(cfg, logg, prometheus.DefaultRegisterer)
	if err != nil {
		logg.Error(ctx, "failed to boot flow engine", err)
		os.Exit(1)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			logg.Error(ctx, "error closing flow engine", err)
		}
	}()

	switch {
	case *login != "":
		if err := engine.Sessions.SetToken(ctx, *login); err != nil {
			logg.Error(ctx, "failed to store token", err)
			os.Exit(1)
		}
		logg.Info(ctx, "session token stored")
		return
	case *logout:
		if err := engine.Sessions.Clear(ctx); err != nil {
			logg.Error(ctx, "failed to clear session", err)
			os.Exit(1)
		}
		logg.Info(ctx, "session cleared")
		return
	}

	unitPrice, err := decimal.NewFromString(*price)
	if err != nil {
		logg.Error(ctx, "invalid price", err)
		os.Exit(1)
	}

	engine.Cart.Refresh(ctx)
	engine.Cart.Add(ctx, types.CartItem{ID: *productID, Name: *name, Price: unitPrice})
	logg.Info(logg.WithField(ctx, "total", engine.Cart.Total().StringFixed(2)), "cart synchronized")

	ctrl := engine.Controller
	if err := ctrl.StartCheckout(ctx, nil); err != nil {
		logg.Error(ctx, "cannot start checkout", err)
		os.Exit(1)
	}

	delivery := types.DeliveryDetails{
		Name:       "Demo Customer",
		Email:      "demo@example.com",
		Address:    "1 Demo Street",
		City:       "Demoville",
		PostalCode: "00000",
		Phone:      "0000000000",
	}
	if err := ctrl.SubmitDelivery(ctx, delivery); err != nil {
		logg.Error(ctx, "delivery rejected", err)
		os.Exit(1)
	}

	chosen, err := enums.ParsePaymentMethod(*method)
	if err != nil {
		logg.Error(ctx, "invalid payment method", err)
		os.Exit(1)
	}
	if err := ctrl.ChooseMethod(chosen); err != nil {
		logg.Error(ctx, "cannot choose method", err)
		os.Exit(1)
	}
	if *reference != "" {
		if err := ctrl.SetReference(*reference); err != nil {
			logg.Error(ctx, "cannot set reference", err)
			os.Exit(1)
		}
	}
	if !ctrl.CanSubmit() {
		logg.Error(ctx, "submission disabled", fmt.Errorf("method %s needs a transaction reference of at least 5 characters", chosen))
		os.Exit(1)
	}

	view, err := ctrl.SubmitOrder(ctx)
	if err != nil {
		logg.Error(ctx, "order submission failed", err)
		os.Exit(1)
	}

	fmt.Println(view.Headline)
	fmt.Println(view.Message)
	fmt.Printf("order: %s  status: %s  total: %s  method: %s\n", view.OrderID, view.Status, view.Total, view.Method)
}
