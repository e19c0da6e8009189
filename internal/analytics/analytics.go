// Package analytics serves the demo dashboard and demand endpoints. Every
// figure is simulated: the dashboard draws random values and the demand
// "prediction" is a lookup table with random jitter. Real analytics are out
// of scope for this platform.
package analytics

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/pkg/kit"
)

// demandBase maps varietals to their baseline monthly bottle estimate.
var demandBase = map[string]int{
	"Syrah":      120,
	"Pinot Noir": 90,
	"Carmenere":  75,
	"Cabernet":   130,
}

type Server struct {
	Log *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Get("/metricas/dashboard", s.dashboard)
	r.Post("/demanda/predecir", s.predictDemand)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"ventas":          20 + rand.IntN(31),
		"ticket_promedio": round2(8000 + rand.Float64()*7000),
		"clientes_nuevos": 3 + rand.IntN(8),
		"fecha":           time.Now().Format("2006-01-02"),
	}

	s.Log.Debug("dashboard generated")
	kit.WriteEnvelope(w, http.StatusOK, "Métricas generadas", data)
}

type demandReq struct {
	Varietal string `json:"cepa"`
	Month    string `json:"mes"`
}

func (s *Server) predictDemand(w http.ResponseWriter, r *http.Request) {
	var req demandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Varietal == "" || req.Month == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "cepa y mes requeridos", nil)
		return
	}

	base, ok := demandBase[req.Varietal]
	if !ok {
		base = 50 + rand.IntN(51)
	}

	jitter := 0.9 + rand.Float64()*0.3
	estimate := int(math.Round(float64(base) * jitter))

	s.Log.Info("demand estimated",
		zap.String("cepa", req.Varietal),
		zap.String("mes", req.Month),
		zap.Int("estimado", estimate),
	)
	kit.WriteEnvelope(w, http.StatusOK, "Predicción de demanda generada", map[string]any{
		"cepa":     req.Varietal,
		"mes":      req.Month,
		"estimado": estimate,
	})
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
