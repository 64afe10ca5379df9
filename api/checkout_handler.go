package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cafe-order/models"
	"cafe-order/services"
)

type checkoutRequest struct {
	CustomerName    string `json:"customer_name"`
	OrderType       string `json:"order_type"`
	DeliveryAddress string `json:"delivery_address"`
}

type checkoutResponse struct {
	OrderID     int64  `json:"order_id"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
	Message     string `json:"message"`
}

// Checkout submits the session's cart. Per-session serialization (the
// mutex) is the server-side stand-in for the disabled submit button: a
// double click can't produce two orders racing each other.
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if req.OrderType != models.OrderTypeDineIn && req.OrderType != models.OrderTypeDelivery {
		writeError(w, http.StatusBadRequest, "bad_order_type", "order_type must be dine_in or delivery")
		return
	}
	name := req.CustomerName
	if name == "" {
		name = sess.CustomerName
	}

	sess.CheckoutMu.Lock()
	defer sess.CheckoutMu.Unlock()

	result, err := services.SubmitCheckout(r.Context(), s.cfg.WhatsApp.Host, s.cfg.WhatsApp.CountryCode, services.CheckoutInput{
		Lines:        sess.Cart.Lines(),
		CustomerName: name,
		TableNumber:  sess.TableNumber,
		OrderType:    req.OrderType,
		Address:      req.DeliveryAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "empty_cart", "Keranjang masih kosong")
		case errors.Is(err, services.ErrMissingName):
			writeError(w, http.StatusBadRequest, "missing_name", "Nama wajib diisi")
		case errors.Is(err, services.ErrMissingAddress):
			writeError(w, http.StatusBadRequest, "missing_address", "Alamat wajib diisi untuk pesanan delivery")
		case errors.Is(err, services.ErrNoContactConfigured):
			writeError(w, http.StatusConflict, "no_contact_configured", "Nomor WhatsApp admin belum dikonfigurasi")
		default:
			// Cart stays intact so the customer can retry.
			writeError(w, http.StatusInternalServerError, "persistence_failure", "Gagal membuat pesanan")
		}
		return
	}

	sess.Cart.Clear()

	msg := "Pesanan berhasil dibuat! Silakan tunggu pesanan Anda."
	if result.WhatsAppURL != "" {
		msg = "Pesanan tersimpan! Mengarahkan ke WhatsApp..."
	}
	writeJSON(w, http.StatusCreated, checkoutResponse{
		OrderID:     result.OrderID,
		WhatsAppURL: result.WhatsAppURL,
		Message:     msg,
	})
}
