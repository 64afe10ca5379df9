package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"cafe-order/services"
)

type contactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContactMessage stores a landing-page contact form submission.
func (s *Server) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req contactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "missing_fields", "name, email and message are required")
		return
	}

	if err := services.SaveContactMessage(r.Context(), req.Name, req.Email, req.Message); err != nil {
		s.logger.Error().Err(err).Str("request_id", getRequestID(r)).Msg("contact message insert failed")
		writeError(w, http.StatusInternalServerError, "persistence_failure", "Gagal mengirim pesan. Silakan coba lagi.")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Pesan berhasil dikirim! Kami akan segera menghubungi Anda.",
	})
}
