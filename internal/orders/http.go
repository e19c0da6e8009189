package orders

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/internal/auth"
	"VinaUrbana/pkg/kit"
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

// Register mounts the tracking route; the create route requires a user and
// is mounted by the caller inside the authenticated group.
func (s *Server) Register(r chi.Router) {
	r.Get("/pedidos/seguimiento", s.track)
}

func (s *Server) RegisterAuthed(r chi.Router) {
	r.Post("/pedidos/crear", s.create)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	o := s.Store.Create(u.Email)
	s.Log.Info("order created", zap.String("order_id", o.ID), zap.String("user", u.Email))
	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) track(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("pedido_id")

	o, err := s.Store.Track(id)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "pedido no encontrado", map[string]any{"pedido_id": id})
		return
	}

	kit.WriteEnvelope(w, http.StatusOK, "Estado actualizado", map[string]any{
		"id":       o.ID,
		"estado":   o.Status,
		"tracking": o.Tracking,
	})
}
