package main

import (
	"database/sql"
	stdlog "log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"VinaUrbana/internal/auth"
	"VinaUrbana/internal/config"
	"VinaUrbana/internal/server"
	"VinaUrbana/pkg/kit"
)

const service = "vinaurbana"

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log := kit.NewLogger(service, cfg.App.LogLevel)
	defer func() { _ = log.Sync() }()

	hasher := auth.NewHasher(cfg.Auth.HashMode)

	users, err := buildUserStore(cfg, hasher)
	if err != nil {
		log.Fatal("init user store failed", zap.Error(err))
	}

	app := server.NewApp(log, users, buildCodec(cfg))

	reg := prometheus.NewRegistry()
	h := server.NewHandler(app, server.HTTPDeps{
		Log:                 log,
		Service:             service,
		Registry:            reg,
		MetricsEnabled:      cfg.Metrics.Enabled,
		MetricsToken:        cfg.Metrics.Token,
		LoginLimitPerMin:    cfg.Limits.LoginPerMin,
		RegisterLimitPerMin: cfg.Limits.RegisterPerMin,
	})

	if err := kit.RunHTTPServer(cfg.App.Addr(), h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildUserStore(cfg *config.Config, hasher auth.Hasher) (auth.UserStore, error) {
	if cfg.Auth.UserStore != "postgres" {
		return auth.NewMemStore(hasher), nil
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}
	return auth.NewPostgresStore(db, hasher), nil
}

func buildCodec(cfg *config.Config) auth.TokenCodec {
	if cfg.Auth.TokenMode == "jwt" {
		ttl := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
		return auth.NewJWTCodec(cfg.Auth.JWTSecret, ttl)
	}
	return auth.LegacyCodec{}
}
