package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/api/middleware"
	"github.com/shoplite/storefront/api/responses"
	"github.com/shoplite/storefront/api/validators"
	"github.com/shoplite/storefront/internal/cartstore"
	"github.com/shoplite/storefront/pkg/enums"
	pkgerrors "github.com/shoplite/storefront/pkg/errors"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/types"
)

type orderSubmissionRequest struct {
	OrderID        string                `json:"order_id" validate:"required"`
	Delivery       types.DeliveryDetails `json:"delivery_details"`
	Items          []types.CartItem      `json:"items" validate:"required,min=1,dive"`
	Total          decimal.Decimal       `json:"total"`
	PaymentMethod  string                `json:"payment_method" validate:"required"`
	TransactionRef string                `json:"transaction_ref"`
}

type checkoutResponse struct {
	OrderNumber string `json:"order_number"`
}

// Checkout accepts an assembled order. Authentication is required; the
// cart endpoints are open to guests, placing an order is not.
func Checkout(carts *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if middleware.BearerToken(r) == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		var payload orderSubmissionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown payment method"))
			return
		}
		if method.RequiresReference() && len(strings.TrimSpace(payload.TransactionRef)) < 5 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "transaction reference is too short"))
			return
		}

		owner := middleware.OwnerFromContext(r.Context())
		carts.Clear(owner)

		orderNumber := "SL-" + strings.ToUpper(uuid.NewString()[:8])
		ctx := logg.WithOrderID(r.Context(), orderNumber)
		logg.Info(logg.WithPaymentMethod(ctx, string(method)), "order accepted")

		responses.WriteJSON(w, http.StatusOK, checkoutResponse{OrderNumber: orderNumber})
	}
}
