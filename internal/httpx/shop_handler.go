package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shooid/shoo-shop/internal/cart"
	"github.com/shooid/shoo-shop/internal/catalog"
	"github.com/shooid/shoo-shop/internal/checkout"
	"github.com/shooid/shoo-shop/internal/orders"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Products.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	writeJSON(w, http.StatusOK, catalog.Filter(ps, q, category))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ps, err := h.Products.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, catalog.Categories(ps))
}

// cartView is the cart plus the derived numbers the UI shows.
type cartView struct {
	Lines       []cart.Line `json:"lines"`
	TotalRupiah int64       `json:"total_rupiah"`
	Count       int         `json:"count"`
}

func viewOf(c *cart.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartView{Lines: lines, TotalRupiah: c.Total(), Count: c.Count()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.Carts.Load(r.Context(), sessionFrom(r.Context()).Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.Products.Get(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	username := sessionFrom(r.Context()).Username
	c, err := h.Carts.Load(ctx, username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	c.Add(p)
	if err := h.Carts.Save(ctx, username, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) setCartQty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	username := sessionFrom(r.Context()).Username
	c, err := h.Carts.Load(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !c.SetQty(id, req.Qty) {
		writeError(w, http.StatusNotFound, "product not in cart")
		return
	}
	if err := h.Carts.Save(r.Context(), username, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	username := sessionFrom(r.Context()).Username
	c, err := h.Carts.Load(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	c.Remove(id)
	if err := h.Carts.Save(r.Context(), username, c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), sessionFrom(r.Context()).Username); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewOf(&cart.Cart{}))
}

func (h *Handler) openPayment(w http.ResponseWriter, r *http.Request) {
	info, err := h.Checkout.Open(r.Context(), sessionFrom(r.Context()).Username)
	if errors.Is(err, checkout.ErrEmptyCart) {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rec := sessionFrom(r.Context())
	res, err := h.Checkout.Confirm(ctx, rec.Username, rec.Email, req.Method, middleware.GetReqID(r.Context()))
	switch {
	case errors.Is(err, checkout.ErrNotAwaitingPayment):
		writeError(w, http.StatusConflict, "no payment in progress")
		return
	case errors.Is(err, orders.ErrUnknownMethod):
		writeError(w, http.StatusBadRequest, "unknown payment method")
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) cancelPayment(w http.ResponseWriter, r *http.Request) {
	err := h.Checkout.Cancel(r.Context(), sessionFrom(r.Context()).Username)
	if errors.Is(err, checkout.ErrNotAwaitingPayment) {
		writeError(w, http.StatusConflict, "no payment in progress")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	out, err := h.Orders.ListByUser(ctx, sessionFrom(r.Context()).Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if out == nil {
		out = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Orders.Get(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, orders.ErrNotFound) {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// orders are private to their owner
	if o.Username != sessionFrom(r.Context()).Username {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}
