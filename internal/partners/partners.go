// Package partners holds the B2B registries: gourmet marketplace syncs and
// restaurant alliances.
package partners

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/internal/registry"
	"VinaUrbana/pkg/kit"
)

type MarketplaceSync struct {
	Product string    `json:"producto"`
	Stock   int       `json:"stock"`
	Price   float64   `json:"precio"`
	Active  bool      `json:"activo"`
	Date    time.Time `json:"fecha"`
}

type Alliance struct {
	Restaurant string    `json:"restaurante"`
	Benefit    string    `json:"beneficio"`
	QRValid    bool      `json:"qr_valido"`
	Date       time.Time `json:"fecha"`
}

type Server struct {
	Syncs     *registry.Registry[MarketplaceSync]
	Alliances *registry.Registry[Alliance]
	Log       *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{
		Syncs:     registry.New(func(m MarketplaceSync) string { return m.Product }),
		Alliances: registry.New(func(a Alliance) string { return a.Restaurant }),
		Log:       log,
	}
}

func (s *Server) Register(r chi.Router) {
	r.Post("/marketplace/sincronizar", s.syncMarketplace)
	r.Post("/alianzas/registrar", s.registerAlliance)
}

type syncReq struct {
	Product string  `json:"producto"`
	Stock   int     `json:"stock"`
	Price   float64 `json:"precio"`
	Active  *bool   `json:"activo"`
}

func (s *Server) syncMarketplace(w http.ResponseWriter, r *http.Request) {
	var req syncReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Product == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "producto requerido", nil)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	m := s.Syncs.Add(MarketplaceSync{
		Product: req.Product,
		Stock:   req.Stock,
		Price:   req.Price,
		Active:  active,
		Date:    time.Now().UTC(),
	})

	s.Log.Info("marketplace synced", zap.String("producto", m.Product))
	kit.WriteEnvelope(w, http.StatusOK, "Sincronización completada", m)
}

type allianceReq struct {
	Restaurant string `json:"restaurante"`
	Benefit    string `json:"beneficio"`
	QRValid    *bool  `json:"qr_valido"`
}

func (s *Server) registerAlliance(w http.ResponseWriter, r *http.Request) {
	var req allianceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Restaurant == "" || req.Benefit == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "restaurante y beneficio requeridos", nil)
		return
	}

	valid := true
	if req.QRValid != nil {
		valid = *req.QRValid
	}

	a := s.Alliances.Add(Alliance{
		Restaurant: req.Restaurant,
		Benefit:    req.Benefit,
		QRValid:    valid,
		Date:       time.Now().UTC(),
	})

	s.Log.Info("alliance registered", zap.String("restaurante", a.Restaurant))
	kit.WriteEnvelope(w, http.StatusOK, "Alianza registrada", a)
}
