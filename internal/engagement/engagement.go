// Package engagement covers the member-facing registries: club memberships,
// notification requests and donation pledges. All three bind the record to
// the acting user's email.
package engagement

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"VinaUrbana/internal/auth"
	"VinaUrbana/internal/registry"
	"VinaUrbana/pkg/kit"
)

type Membership struct {
	User   string    `json:"usuario"`
	Tier   string    `json:"tipo"`
	Active bool      `json:"activa"`
	Date   time.Time `json:"fecha"`
}

type Notification struct {
	User        string    `json:"usuario"`
	Channel     string    `json:"canal"`
	Message     string    `json:"mensaje"`
	WindowStart string    `json:"horario_inicio,omitempty"`
	WindowEnd   string    `json:"horario_fin,omitempty"`
	Date        time.Time `json:"fecha"`
}

type Donation struct {
	User   string    `json:"usuario"`
	NGO    string    `json:"ong"`
	Amount float64   `json:"aporte"`
	Date   time.Time `json:"fecha"`
}

type Server struct {
	Memberships   *registry.Registry[Membership]
	Notifications *registry.Registry[Notification]
	Donations     *registry.Registry[Donation]
	Log           *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{
		Memberships:   registry.New(func(m Membership) string { return m.User }),
		Notifications: registry.New(func(n Notification) string { return n.User }),
		Donations:     registry.New(func(d Donation) string { return d.User }),
		Log:           log,
	}
}

func (s *Server) RegisterAuthed(r chi.Router) {
	r.Post("/membresias/activar", s.activateMembership)
	r.Post("/notificaciones/enviar", s.sendNotification)
	r.Post("/donaciones/aportar", s.registerDonation)
}

type membershipReq struct {
	Tier   string `json:"tipo"`
	Active *bool  `json:"activa"`
}

func (s *Server) activateMembership(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req membershipReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Tier == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "tipo requerido", nil)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	m := s.Memberships.Add(Membership{
		User:   u.Email,
		Tier:   req.Tier,
		Active: active,
		Date:   time.Now().UTC(),
	})

	s.Log.Info("membership activated", zap.String("user", u.Email), zap.String("tipo", m.Tier))
	kit.WriteEnvelope(w, http.StatusOK,
		fmt.Sprintf("Membresía %s activada correctamente", m.Tier), m)
}

type notificationReq struct {
	Channel     string `json:"canal"`
	Message     string `json:"mensaje"`
	WindowStart string `json:"horario_inicio"`
	WindowEnd   string `json:"horario_fin"`
}

func (s *Server) sendNotification(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req notificationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Channel == "" || req.Message == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "canal y mensaje requeridos", nil)
		return
	}

	n := s.Notifications.Add(Notification{
		User:        u.Email,
		Channel:     req.Channel,
		Message:     req.Message,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		Date:        time.Now().UTC(),
	})

	s.Log.Info("notification queued", zap.String("user", u.Email), zap.String("canal", n.Channel))
	kit.WriteEnvelope(w, http.StatusOK, "Notificación procesada", n)
}

type donationReq struct {
	NGO        string  `json:"ong"`
	Percentage float64 `json:"porcentaje"`
	Purchase   float64 `json:"monto_compra"`
}

func (s *Server) registerDonation(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.UserFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req donationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.NGO == "" || req.Percentage < 0 || req.Purchase < 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "ong, porcentaje y monto_compra requeridos", nil)
		return
	}

	d := s.Donations.Add(Donation{
		User:   u.Email,
		NGO:    req.NGO,
		Amount: round2(req.Purchase * req.Percentage),
		Date:   time.Now().UTC(),
	})

	s.Log.Info("donation registered",
		zap.String("user", u.Email),
		zap.String("ong", d.NGO),
		zap.Float64("aporte", d.Amount),
	)
	kit.WriteEnvelope(w, http.StatusOK, "Donación registrada", d)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
