package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/pkg/kit"
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Get("/catalogo/listar", s.list)
	r.Get("/catalogo/producto", s.get)
	r.Get("/catalogo/filtrar", s.filter)
	r.Get("/ofertas", s.offers)
	r.Get("/tiendas", s.locations)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	kit.WriteEnvelope(w, http.StatusOK, "Catálogo completo", s.Store.List())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("producto_id")

	p, err := s.Store.Get(id)
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "producto no encontrado", map[string]any{"producto_id": id})
		return
	}
	kit.WriteEnvelope(w, http.StatusOK, "Producto encontrado", p)
}

func (s *Server) filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := Filter{
		Category: q.Get("tipo"),
		Varietal: q.Get("cepa"),
		Origin:   q.Get("origen"),
	}

	var err error
	if f.MinPrice, err = priceParam(q.Get("precio_min")); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "precio_min inválido", nil)
		return
	}
	if f.MaxPrice, err = priceParam(q.Get("precio_max")); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "precio_max inválido", nil)
		return
	}

	kit.WriteEnvelope(w, http.StatusOK, "Resultados del filtro", s.Store.Search(f))
}

func (s *Server) offers(w http.ResponseWriter, r *http.Request) {
	kit.WriteEnvelope(w, http.StatusOK, "Ofertas activas", s.Store.Offers())
}

func (s *Server) locations(w http.ResponseWriter, r *http.Request) {
	comuna := r.URL.Query().Get("comuna")

	msg := "Tiendas disponibles"
	if comuna != "" {
		msg = "Tiendas filtradas"
	}
	kit.WriteEnvelope(w, http.StatusOK, msg, s.Store.Locations(comuna))
}

func priceParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
