package config

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/catalog-be/internal/auth"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string `validate:"required"`
	DatabaseURL string `validate:"required"`
	DBMaxConns  int32  `validate:"min=1"`

	JWTSecret string `validate:"required"`
	JWTIssuer string `validate:"required"`

	Pepper            string
	SaltRounds        int `validate:"min=4,max=31"`
	PasswordMinLength int `validate:"min=1"`

	CORSOrigins    []string `validate:"min=1"`
	CookieSecure   bool
	CookieSameSite http.SameSite

	SearchNode  string
	SearchIndex string `validate:"required"`

	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

// envVars is the raw environment as koanf sees it: lower-cased variable
// names, unparsed values.
type envVars struct {
	Port              string `koanf:"port"`
	DatabaseURL       string `koanf:"database_url"`
	DBHost            string `koanf:"db_host"`
	DBPort            string `koanf:"db_port"`
	DBUser            string `koanf:"db_user"`
	DBPass            string `koanf:"db_pass"`
	DBName            string `koanf:"db_name"`
	DBSSLMode         string `koanf:"db_sslmode"`
	DBMaxConns        string `koanf:"db_max_conns"`
	JWTSecret         string `koanf:"jwt_secret"`
	JWTIssuer         string `koanf:"jwt_issuer"`
	Pepper            string `koanf:"pepper"`
	SaltRounds        string `koanf:"salt_rounds"`
	PasswordMinLength string `koanf:"password_min_length"`
	CORSOrigin        string `koanf:"cors_origin"`
	CookieSecure      string `koanf:"cookie_secure"`
	CookieSameSite    string `koanf:"cookie_samesite"`
	ESNode            string `koanf:"es_node"`
	ESIndex           string `koanf:"es_index"`
	LogLevel          string `koanf:"log_level"`
	LogFormat         string `koanf:"log_format"`
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	var raw envVars
	if err := k.Unmarshal("", &raw); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	cfg := Config{
		Port:              fallback(raw.Port, "5000"),
		DatabaseURL:       strings.TrimSpace(raw.DatabaseURL),
		DBMaxConns:        int32(positiveInt(raw.DBMaxConns, 10)),
		JWTSecret:         strings.TrimSpace(raw.JWTSecret),
		JWTIssuer:         fallback(raw.JWTIssuer, "catalog-backend"),
		Pepper:            raw.Pepper,
		SaltRounds:        positiveInt(raw.SaltRounds, 12),
		PasswordMinLength: positiveInt(raw.PasswordMinLength, 5),
		CORSOrigins:       parseCSV(fallback(raw.CORSOrigin, "http://localhost:5173")),
		CookieSecure:      strings.EqualFold(strings.TrimSpace(raw.CookieSecure), "true"),
		SearchNode:        strings.TrimSpace(raw.ESNode),
		SearchIndex:       fallback(raw.ESIndex, "products"),
		LogLevel:          strings.ToLower(fallback(raw.LogLevel, "info")),
		LogFormat:         strings.ToLower(fallback(raw.LogFormat, "json")),
	}

	sameSite, err := parseSameSite(fallback(raw.CookieSameSite, "Lax"))
	if err != nil {
		return Config{}, err
	}
	cfg.CookieSameSite = sameSite

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = databaseURLFromParts(raw)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL or DB_HOST/DB_USER/DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if cfg.SaltRounds < bcrypt.MinCost || cfg.SaltRounds > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("SALT_ROUNDS must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	// The shortest accepted password plus the pepper must fit bcrypt's input.
	if len(cfg.Pepper)+cfg.PasswordMinLength > auth.MaxHashInput {
		return Config{}, fmt.Errorf("PEPPER must be at most %d bytes with PASSWORD_MIN_LENGTH=%d",
			auth.MaxHashInput-cfg.PasswordMinLength, cfg.PasswordMinLength)
	}
	if cfg.CookieSameSite == http.SameSiteNoneMode && !cfg.CookieSecure {
		return Config{}, errors.New("COOKIE_SAMESITE=None requires COOKIE_SECURE=true")
	}
	if slices.Contains(cfg.CORSOrigins, "*") {
		return Config{}, errors.New("CORS_ORIGIN cannot contain * because requests carry the session cookie")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// SearchEnabled reports whether a full-text engine endpoint is configured.
func (c Config) SearchEnabled() bool {
	return c.SearchNode != ""
}

func databaseURLFromParts(raw envVars) string {
	host := strings.TrimSpace(raw.DBHost)
	user := strings.TrimSpace(raw.DBUser)
	name := strings.TrimSpace(raw.DBName)
	if host == "" || user == "" || name == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, raw.DBPass),
		Host:     net.JoinHostPort(host, fallback(raw.DBPort, "5432")),
		Path:     "/" + name,
		RawQuery: "sslmode=" + url.QueryEscape(fallback(raw.DBSSLMode, "disable")),
	}
	return u.String()
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("COOKIE_SAMESITE must be Lax, Strict or None, got %q", value)
	}
}

func positiveInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
