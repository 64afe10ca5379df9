package api

import (
	"net/http"

	"cafe-order/cart"
	"cafe-order/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg      *config.Config
	sessions *cart.Store
	logger   *zerolog.Logger
}

func NewServer(cfg *config.Config, sessions *cart.Store, logger *zerolog.Logger) *Server {
	if sessions == nil {
		panic("sessions store cannot be nil")
	}
	return &Server{cfg: cfg, sessions: sessions, logger: logger}
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(s.logger))
	r.Use(RecoverMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", s.CreateSession)
		r.Get("/menu", s.ListMenu)
		r.Get("/cart", s.GetCart)
		r.Post("/cart/items", s.AddCartItem)
		r.Patch("/cart/items/{menuID}", s.ChangeCartItem)
		r.Delete("/cart", s.ClearCart)
		r.Post("/checkout", s.Checkout)
		r.Post("/contact-messages", s.CreateContactMessage)
	})
	return r
}

// session resolves the browsing session from the X-Session-ID header.
// Writes the error response itself when the session is missing or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*cart.Session, bool) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_session", "X-Session-ID header is required")
		return nil, false
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session_not_found", "session does not exist or has expired")
		return nil, false
	}
	return sess, true
}
