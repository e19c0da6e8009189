package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"VinaUrbana/pkg/kit"
)

const maxBodyBytes = 1 << 20

type Server struct {
	Log   *zap.Logger
	Store UserStore
	Codec TokenCodec
}

// Handler accessors let the router attach per-route middleware such as rate
// limits.
func (s *Server) RegisterHandler() http.HandlerFunc  { return s.handleRegister }
func (s *Server) LoginFormHandler() http.HandlerFunc { return s.handleLoginForm }
func (s *Server) LoginJSONHandler() http.HandlerFunc { return s.handleLoginJSON }

type registerReq struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Password     string   `json:"password"`
	Preferencias []string `json:"preferencias"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req registerReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" || req.Name == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/name/password required", nil)
		return
	}

	u, err := s.Store.Create(r.Context(), req.Email, req.Name, req.Password)
	if errors.Is(err, ErrEmailTaken) {
		kit.WriteError(w, r, http.StatusBadRequest, "el correo ya está registrado", nil)
		return
	}
	if err != nil {
		s.Log.Error("create user", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Log.Info("user registered",
		zap.String("email", u.Email),
		zap.Strings("preferencias", req.Preferencias),
	)
	kit.WriteJSON(w, http.StatusCreated, u)
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleLoginForm accepts the OAuth2 password form: the email travels in the
// "username" field.
func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad form", nil)
		return
	}

	s.login(w, r, r.PostFormValue("username"), r.PostFormValue("password"))
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLoginJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req loginReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	s.login(w, r, req.Email, req.Password)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, email, password string) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	u, err := s.Store.Authenticate(r.Context(), email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		kit.WriteError(w, r, http.StatusBadRequest, "credenciales incorrectas", nil)
		return
	}
	if err != nil {
		s.Log.Error("authenticate", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	tok, err := s.Codec.Issue(u)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, tokenResp{AccessToken: tok, TokenType: "bearer"})
}
