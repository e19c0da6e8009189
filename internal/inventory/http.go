package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/pkg/kit"
)

type Server struct {
	Ledger *Ledger
	Log    *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Post("/stock/reservar", s.reserve)
}

func (s *Server) reserve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("nombre")
	qty, err := strconv.Atoi(q.Get("cantidad"))
	if name == "" || err != nil || qty <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "nombre y cantidad (positiva) requeridos", nil)
		return
	}

	_, err = s.Ledger.Reserve(name, qty)
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "producto no encontrado", nil)
		return
	case errors.Is(err, ErrInsufficientStock):
		kit.WriteError(w, r, http.StatusBadRequest, "stock insuficiente", nil)
		return
	}

	s.Log.Info("stock reserved", zap.String("nombre", name), zap.Int("cantidad", qty))
	kit.WriteEnvelope(w, http.StatusOK, fmt.Sprintf("%d unidades reservadas de %s", qty, name), nil)
}
