package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	Metrics  MetricsConfig
	Limits   LimitConfig
}

type AppConfig struct {
	Host     string
	Port     string
	LogLevel string
}

// AuthConfig selects the credential and token schemes. The defaults keep the
// original platform's wire behavior: an unsalted sha256 digest and a
// "token-<email>" bearer string with no expiry.
type AuthConfig struct {
	TokenMode       string // "legacy" or "jwt"
	HashMode        string // "sha256" or "bcrypt"
	JWTSecret       string
	TokenTTLMinutes int
	UserStore       string // "memory" or "postgres"
}

type PostgresConfig struct {
	DSN string
}

type MetricsConfig struct {
	Enabled bool
	Token   string
}

type LimitConfig struct {
	LoginPerMin    int
	RegisterPerMin int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Host:     getEnv("HOST", "0.0.0.0"),
			Port:     getEnv("PORT", "8000"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			TokenMode:       getEnv("TOKEN_MODE", "legacy"),
			HashMode:        getEnv("HASH_MODE", "sha256"),
			JWTSecret:       os.Getenv("JWT_SECRET"),
			TokenTTLMinutes: getEnvAsInt("TOKEN_TTL_MINUTES", 60),
			UserStore:       getEnv("USER_STORE", "memory"),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("DATABASE_URL"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", false),
			Token:   os.Getenv("METRICS_TOKEN"),
		},
		Limits: LimitConfig{
			LoginPerMin:    getEnvAsInt("LOGIN_LIMIT_PER_MIN", 5),
			RegisterPerMin: getEnvAsInt("REGISTER_LIMIT_PER_MIN", 3),
		},
	}

	if cfg.Auth.TokenMode == "jwt" && len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("TOKEN_MODE=jwt requires JWT_SECRET of at least 32 chars")
	}
	if cfg.Auth.UserStore == "postgres" && cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("USER_STORE=postgres requires DATABASE_URL")
	}

	return cfg, nil
}

func (a AppConfig) Addr() string {
	return a.Host + ":" + a.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
