package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// JWT
	JWTSecret string

	// Cookie flags (derived from AppEnv unless overridden)
	CookieSameSite string
	CookieSecure   bool

	// Server
	Port        string
	AppEnv      string
	CORSOrigins string

	// Observability
	SentryDSN string
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	isProd := appEnv == "production"

	sameSite := getEnv("COOKIE_SAME_SITE", "")
	if sameSite == "" {
		if isProd {
			sameSite = "None"
		} else {
			sameSite = "Lax"
		}
	}

	secure := isProd
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure = v == "true"
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "kweza"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		CookieSameSite: sameSite,
		CookieSecure:   secure,

		Port:        getEnv("PORT", "3000"),
		AppEnv:      appEnv,
		// Wildcard origins cannot be combined with credentialed cookies,
		// so the fallback names the local dev origin explicitly.
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		SentryDSN: getEnv("SENTRY_DSN", ""),
	}
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set,
// matching the original deployment convention.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// AllowedOrigins returns CORS_ORIGINS with whitespace trimmed around each entry.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, ",")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
