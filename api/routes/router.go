package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/storefront/api/controllers"
	"github.com/shoplite/storefront/api/middleware"
	"github.com/shoplite/storefront/internal/cartstore"
	"github.com/shoplite/storefront/pkg/config"
	"github.com/shoplite/storefront/pkg/logger"
)

// NewRouter wires the development backend: the exact REST contract the
// flow engine consumes, backed by an in-memory cart store.
func NewRouter(cfg *config.Config, logg *logger.Logger, carts *cartstore.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.DevServer.AllowedOrigins),
		middleware.Owner(),
	)

	r.Get("/healthz", controllers.Health())

	r.Get("/cart", controllers.CartList(carts))
	r.Post("/cart/add", controllers.CartAdd(carts, logg))
	r.Put("/cart/update/{id}", controllers.CartUpdate(carts, logg))
	r.Delete("/cart/remove/{id}", controllers.CartRemove(carts))
	r.Delete("/cart/clear", controllers.CartClear(carts))

	r.Post("/checkout", controllers.Checkout(carts, logg))

	return r
}
