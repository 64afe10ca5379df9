package api

import (
	"net/http"

	"cafe-order/models"
	"cafe-order/services"
)

type menuResponse struct {
	Items      []models.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
}

// ListMenu returns every available item. A read failure degrades to an
// empty listing instead of an error page; the browsing screen just shows
// no items.
func (s *Server) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListAvailableMenu(r.Context())
	if err != nil {
		s.logger.Warn().Err(err).Str("request_id", getRequestID(r)).Msg("menu fetch failed")
		items = nil
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	writeJSON(w, http.StatusOK, menuResponse{Items: items, Categories: models.Categories})
}
