package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"VinaUrbana/internal/auth"
	"VinaUrbana/pkg/kit"
)

// APIPrefix is the fixed mount point every storefront endpoint lives under.
const APIPrefix = "/api/vinaurbana"

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	LoginLimitPerMin    int
	RegisterLimitPerMin int
}

const limitWindowSeconds = 60

func NewHandler(app *App, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/", root)
	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(app, deps.Log))

	r.Route(APIPrefix, func(api chi.Router) {
		setupPublicRoutes(api, app, deps)
		setupAuthedRoutes(api, app)
	})

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func setupPublicRoutes(api chi.Router, app *App, deps HTTPDeps) {
	registerLimiter := kit.NewIPRateLimiter(orDefault(deps.RegisterLimitPerMin, 3), limitWindowSeconds)
	loginLimiter := kit.NewIPRateLimiter(orDefault(deps.LoginLimitPerMin, 5), limitWindowSeconds)

	api.With(registerLimiter.Middleware).Post("/usuarios/registro", app.Auth.RegisterHandler())
	api.With(loginLimiter.Middleware).Post("/sesion/inicio", app.Auth.LoginFormHandler())
	api.With(loginLimiter.Middleware).Post("/sesion/login-json", app.Auth.LoginJSONHandler())

	app.Catalog.Register(api)
	app.Inventory.Register(api)
	app.Orders.Register(api)
	app.Support.Register(api)
	app.Partners.Register(api)
	app.Experience.Register(api)
	app.Analytics.Register(api)
}

func setupAuthedRoutes(api chi.Router, app *App) {
	api.Group(func(pr chi.Router) {
		pr.Use(auth.RequireUser(app.Codec, app.Users))

		app.Orders.RegisterAuthed(pr)
		app.Support.RegisterAuthed(pr)
		app.Engagement.RegisterAuthed(pr)
	})
}

func root(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje": "API Viña Urbana operativa. Visita /docs para explorar los endpoints.",
		"version": Version,
	})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(app *App, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := app.Users.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
