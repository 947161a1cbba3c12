package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront/api/middleware"
	"github.com/shoplite/storefront/api/responses"
	"github.com/shoplite/storefront/api/validators"
	"github.com/shoplite/storefront/internal/cartstore"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/types"
)

// CartList returns the owner's cart as a bare item array, the shape the
// sync client re-fetches after every mutation.
func CartList(carts *cartstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFromContext(r.Context())
		responses.WriteJSON(w, http.StatusOK, carts.Items(owner))
	}
}

type addItemRequest struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Image    string          `json:"image"`
}

// CartAdd inserts a line or increments an existing one.
func CartAdd(carts *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		owner := middleware.OwnerFromContext(r.Context())
		carts.Add(owner, types.CartItem{
			ID:       payload.ID,
			Name:     payload.Name,
			Price:    payload.Price,
			Quantity: payload.Quantity,
			Image:    payload.Image,
		})
		responses.WriteNoContent(w)
	}
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// CartUpdate sets the quantity for a line; zero removes it.
func CartUpdate(carts *cartstore.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		owner := middleware.OwnerFromContext(r.Context())
		carts.Update(owner, chi.URLParam(r, "id"), *payload.Quantity)
		responses.WriteNoContent(w)
	}
}

// CartRemove drops a line. Removing an absent identifier is a no-op so
// retried deletes stay idempotent.
func CartRemove(carts *cartstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFromContext(r.Context())
		carts.Remove(owner, chi.URLParam(r, "id"))
		responses.WriteNoContent(w)
	}
}

// CartClear empties the owner's cart.
func CartClear(carts *cartstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middleware.OwnerFromContext(r.Context())
		carts.Clear(owner)
		responses.WriteNoContent(w)
	}
}
