package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cafe-order/cart"
	"cafe-order/services"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

type cartResponse struct {
	Lines   []cart.Line `json:"lines"`
	Total   int64       `json:"total"`
	Message string      `json:"message,omitempty"`
}

func cartView(c *cart.Cart, msg string) cartResponse {
	lines := c.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}
	return cartResponse{Lines: lines, Total: c.Total(), Message: msg}
}

func (s *Server) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView(sess.Cart, ""))
}

type addItemRequest struct {
	MenuID string `json:"menu_id"`
}

// AddCartItem resolves the menu row server-side so the cart snapshots the
// store's price, not whatever the client sent. The availability flag is
// re-checked here even though the listing already filters it: the menu
// the client is looking at can be stale.
func (s *Server) AddCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MenuID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "menu_id is required")
		return
	}

	item, err := services.GetMenuItem(r.Context(), req.MenuID)
	if err != nil {
		// Only a missing row (or an id that can't be one) is the
		// client's fault; anything else is the store failing.
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
			writeError(w, http.StatusNotFound, "menu_not_found", "menu item not found")
			return
		}
		s.logger.Error().Err(err).Str("request_id", getRequestID(r)).Msg("menu item lookup failed")
		writeError(w, http.StatusInternalServerError, "fetch_failure", "Gagal memuat menu")
		return
	}
	if !item.Available {
		writeError(w, http.StatusConflict, "item_unavailable", fmt.Sprintf("%s sedang tidak tersedia", item.Name))
		return
	}

	sess.Cart.AddItem(*item)
	writeJSON(w, http.StatusOK, cartView(sess.Cart, fmt.Sprintf("%s ditambahkan ke keranjang", item.Name)))
}

type changeQtyRequest struct {
	Delta int `json:"delta"`
}

func (s *Server) ChangeCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req changeQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Delta == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", "delta must be a non-zero integer")
		return
	}

	sess.Cart.ChangeQuantity(chi.URLParam(r, "menuID"), req.Delta)
	writeJSON(w, http.StatusOK, cartView(sess.Cart, ""))
}

func (s *Server) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}
