package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const devJWTSecret = "devjwtsecret"

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, test, production
	Port    string
	GinMode string

	LogLevel string // overrides the env default when set

	// MongoDB
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
	MigrationsEnabled   bool

	// Auth tokens
	JWTSecret  string
	JWTTTL     time.Duration // 0 disables expiry
	BcryptCost int

	// Redis session cache, disabled when RedisAddr is empty
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionCacheTTL time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	mongoURI := getenv("MONGODB_URI", "mongodb://localhost:27017/TodoApp")

	return &Config{
		AppName: getenv("APP_NAME", "todo-api"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		LogLevel: getenv("LOG_LEVEL", ""),

		MongoURI:            mongoURI,
		MongoDatabase:       getenv("MONGODB_DATABASE", databaseFromURI(mongoURI, "TodoApp")),
		MongoConnectTimeout: getdur("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		MigrationsEnabled:   getbool("MIGRATIONS_ENABLED", true),

		JWTSecret:  getenv("JWT_SECRET", devJWTSecret),
		JWTTTL:     getdur("JWT_TTL", 168*time.Hour),
		BcryptCost: getint("BCRYPT_COST", 10),

		RedisAddr:       getenv("REDIS_ADDR", ""),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getint("REDIS_DB", 0),
		SessionCacheTTL: getdur("SESSION_CACHE_TTL", 15*time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),
		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
	}
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.Env == "production" && c.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.MongoDatabase == "" {
		return errors.New("MONGODB_DATABASE is empty and MONGODB_URI has no database path")
	}
	return nil
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// databaseFromURI returns the database named in the URI path, e.g. TodoApp for
// mongodb://localhost:27017/TodoApp.
func databaseFromURI(uri, def string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return def
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return def
}
