package api

import "net/http"

type sessionResponse struct {
	SessionID    string `json:"session_id"`
	TableNumber  string `json:"table_number,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
}

// CreateSession starts a browsing session. The table number and an
// optional customer name arrive as query parameters from the ordering
// entry link (e.g. a QR code on the table); absence just omits prefill.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	name := r.URL.Query().Get("name")

	sess := s.sessions.Create(table, name)
	writeJSON(w, http.StatusCreated, sessionResponse{
		SessionID:    sess.ID,
		TableNumber:  sess.TableNumber,
		CustomerName: sess.CustomerName,
	})
}
