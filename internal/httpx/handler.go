package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shooid/shoo-shop/internal/accounts"
	"github.com/shooid/shoo-shop/internal/cart"
	"github.com/shooid/shoo-shop/internal/catalog"
	"github.com/shooid/shoo-shop/internal/checkout"
	"github.com/shooid/shoo-shop/internal/orders"
	"github.com/shooid/shoo-shop/internal/session"
)

// Store interfaces mirror the repos, so handler tests can swap in fakes.

type AccountStore interface {
	Register(ctx context.Context, email, username, password string) (accounts.Account, error)
	Authenticate(ctx context.Context, identifier, password string) (accounts.Account, error)
	UpdateProfile(ctx context.Context, username string, patch accounts.ProfilePatch) (accounts.Account, error)
}

type ProductStore interface {
	List(ctx context.Context) ([]catalog.Product, error)
	Get(ctx context.Context, id int64) (catalog.Product, error)
}

type OrderStore interface {
	ListByUser(ctx context.Context, username string) ([]orders.Order, error)
	Get(ctx context.Context, orderID string) (orders.Order, error)
}

type Handler struct {
	Accounts AccountStore
	Sessions *session.Store
	Products ProductStore
	Carts    *cart.Store
	Checkout *checkout.Service
	Orders   OrderStore
}

func (h *Handler) Register(r *chi.Mux) {
	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Post("/auth/logout", h.logout)
		r.Get("/me", h.me)
		r.Put("/me", h.updateProfile)

		r.Get("/products", h.listProducts)
		r.Get("/categories", h.listCategories)

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addCartItem)
		r.Put("/cart/items/{id}", h.setCartQty)
		r.Delete("/cart/items/{id}", h.removeCartItem)
		r.Delete("/cart", h.clearCart)

		r.Post("/checkout", h.openPayment)
		r.Post("/checkout/confirm", h.confirmPayment)
		r.Post("/checkout/cancel", h.cancelPayment)

		r.Get("/orders", h.listOrders)
		r.Get("/orders/{id}", h.getOrder)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
