// Package support registers customer tickets. The SLA is derived from the
// contact channel, not chosen by the caller.
package support

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/internal/auth"
	"VinaUrbana/internal/registry"
	"VinaUrbana/pkg/kit"
)

type Ticket struct {
	User     string    `json:"usuario"`
	Channel  string    `json:"canal"`
	Priority string    `json:"prioridad"`
	Message  string    `json:"mensaje"`
	SLA      string    `json:"SLA"`
	Date     time.Time `json:"fecha"`
}

var slaByChannel = map[string]string{
	"email":    "24h",
	"whatsapp": "5min",
	"telefono": "10min",
}

const defaultSLA = "24h"

func SLAFor(channel string) string {
	if sla, ok := slaByChannel[channel]; ok {
		return sla
	}
	return defaultSLA
}

type Server struct {
	Tickets *registry.Registry[Ticket]
	Log     *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{
		Tickets: registry.New(func(t Ticket) string { return t.User }),
		Log:     log,
	}
}

func (s *Server) Register(r chi.Router) {
	r.Get("/soporte/tickets", s.list)
}

func (s *Server) RegisterAuthed(r chi.Router) {
	r.Post("/soporte/ticket", s.create)
}

type ticketReq struct {
	Channel  string `json:"canal"`
	Priority string `json:"prioridad"`
	Message  string `json:"mensaje"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req ticketReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Channel == "" || req.Priority == "" || req.Message == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "canal/prioridad/mensaje requeridos", nil)
		return
	}

	t := s.Tickets.Add(Ticket{
		User:     u.Email,
		Channel:  req.Channel,
		Priority: req.Priority,
		Message:  req.Message,
		SLA:      SLAFor(req.Channel),
		Date:     time.Now().UTC(),
	})

	s.Log.Info("ticket created", zap.String("user", u.Email), zap.String("canal", t.Channel))
	kit.WriteEnvelope(w, http.StatusOK, "Ticket registrado", t)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	kit.WriteEnvelope(w, http.StatusOK, "Tickets registrados", s.Tickets.List())
}
