// Package experience groups the label-and-experience registries: digital
// sustainability labels, virtual winery visits, interactive pairings and the
// pairing chatbot.
package experience

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"VinaUrbana/internal/registry"
	"VinaUrbana/pkg/kit"
)

type DigitalLabel struct {
	ID              string   `json:"id"`
	Wine            string   `json:"vino"`
	CarbonFootprint float64  `json:"huella_carbono"`
	Certifications  []string `json:"certificaciones"`
	Valid           bool     `json:"vigente"`
}

type VirtualVisit struct {
	ID            string `json:"id"`
	Winery        string `json:"bodega"`
	ExperienceURL string `json:"url_experiencia"`
	DurationMin   int    `json:"duracion_min"`
	WebARCapable  bool   `json:"compatible_webar"`
}

type Pairing struct {
	ID               string   `json:"id"`
	Wine             string   `json:"vino"`
	Suggestions      []string `json:"sugerencias"`
	AvailableOffline bool     `json:"disponible_offline"`
}

// pairingTable backs the chatbot. Unknown dishes fall through to Pinot Noir.
var pairingTable = map[string]string{
	"carne":   "Cabernet Sauvignon",
	"pescado": "Sauvignon Blanc",
	"pasta":   "Merlot",
	"queso":   "Carmenere",
}

const fallbackWine = "Pinot Noir"

func SuggestFor(dish string) string {
	if wine, ok := pairingTable[strings.ToLower(dish)]; ok {
		return wine
	}
	return fallbackWine
}

type Server struct {
	Labels   *registry.Registry[DigitalLabel]
	Visits   *registry.Registry[VirtualVisit]
	Pairings *registry.Registry[Pairing]
	Log      *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{
		Labels:   registry.New(func(l DigitalLabel) string { return l.Wine }),
		Visits:   registry.New(func(v VirtualVisit) string { return v.Winery }),
		Pairings: registry.New(func(p Pairing) string { return p.Wine }),
		Log:      log,
	}
}

func (s *Server) Register(r chi.Router) {
	r.Post("/maridaje/chatbot", s.chatbot)

	r.Post("/etiquetas/registrar", s.registerLabel)
	r.Get("/etiquetas/ver", s.viewLabel)

	r.Post("/visitas/registrar", s.registerVisit)
	r.Get("/visitas/listar", s.listVisits)

	r.Post("/maridajes/registrar", s.registerPairing)
	r.Get("/maridajes/ver", s.viewPairing)
}

type chatbotReq struct {
	Dish string `json:"plato"`
}

func (s *Server) chatbot(w http.ResponseWriter, r *http.Request) {
	var req chatbotReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	dish := strings.ToLower(req.Dish)
	wine := SuggestFor(dish)

	s.Log.Info("pairing suggested", zap.String("plato", dish), zap.String("vino", wine))
	kit.WriteEnvelope(w, http.StatusOK, fmt.Sprintf("Recomendado para %s: %s", dish, wine), nil)
}

type labelReq struct {
	Wine            string   `json:"vino"`
	CarbonFootprint float64  `json:"huella_carbono"`
	Certifications  []string `json:"certificaciones"`
	Valid           *bool    `json:"vigente"`
}

func (s *Server) registerLabel(w http.ResponseWriter, r *http.Request) {
	var req labelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Wine == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "vino requerido", nil)
		return
	}

	valid := true
	if req.Valid != nil {
		valid = *req.Valid
	}

	l := s.Labels.Add(DigitalLabel{
		ID:              uuid.NewString(),
		Wine:            req.Wine,
		CarbonFootprint: req.CarbonFootprint,
		Certifications:  req.Certifications,
		Valid:           valid,
	})

	s.Log.Info("label registered", zap.String("vino", l.Wine))
	kit.WriteEnvelope(w, http.StatusOK, "Etiqueta registrada", l)
}

// viewLabel returns the label even when it is no longer valid; the message
// distinguishes the expired case instead of a 404.
func (s *Server) viewLabel(w http.ResponseWriter, r *http.Request) {
	wine := r.URL.Query().Get("vino")

	l, ok := s.Labels.Find(wine)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "etiqueta no encontrada", nil)
		return
	}

	msg := "Etiqueta encontrada"
	if !l.Valid {
		msg = "Etiqueta expirada"
	}
	kit.WriteEnvelope(w, http.StatusOK, msg, l)
}

type visitReq struct {
	Winery        string `json:"bodega"`
	ExperienceURL string `json:"url_experiencia"`
	DurationMin   int    `json:"duracion_min"`
	WebARCapable  *bool  `json:"compatible_webar"`
}

func (s *Server) registerVisit(w http.ResponseWriter, r *http.Request) {
	var req visitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Winery == "" || req.ExperienceURL == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "bodega y url_experiencia requeridos", nil)
		return
	}

	webAR := true
	if req.WebARCapable != nil {
		webAR = *req.WebARCapable
	}

	v := s.Visits.Add(VirtualVisit{
		ID:            uuid.NewString(),
		Winery:        req.Winery,
		ExperienceURL: req.ExperienceURL,
		DurationMin:   req.DurationMin,
		WebARCapable:  webAR,
	})

	s.Log.Info("virtual visit registered", zap.String("bodega", v.Winery))
	kit.WriteEnvelope(w, http.StatusOK, "Visita registrada", v)
}

func (s *Server) listVisits(w http.ResponseWriter, r *http.Request) {
	kit.WriteEnvelope(w, http.StatusOK, "Listado de experiencias virtuales", s.Visits.List())
}

type pairingReq struct {
	Wine             string   `json:"vino"`
	Suggestions      []string `json:"sugerencias"`
	AvailableOffline bool     `json:"disponible_offline"`
}

func (s *Server) registerPairing(w http.ResponseWriter, r *http.Request) {
	var req pairingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Wine == "" || len(req.Suggestions) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "vino y sugerencias requeridos", nil)
		return
	}

	p := s.Pairings.Add(Pairing{
		ID:               uuid.NewString(),
		Wine:             req.Wine,
		Suggestions:      req.Suggestions,
		AvailableOffline: req.AvailableOffline,
	})

	s.Log.Info("pairing registered", zap.String("vino", p.Wine))
	kit.WriteEnvelope(w, http.StatusOK, "Maridaje registrado", p)
}

func (s *Server) viewPairing(w http.ResponseWriter, r *http.Request) {
	wine := r.URL.Query().Get("vino")

	p, ok := s.Pairings.Find(wine)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "maridaje no encontrado", nil)
		return
	}
	kit.WriteEnvelope(w, http.StatusOK, "Maridaje encontrado", p)
}
