package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends for the directory document.
const (
	StoreBackendRedis = "redis"
	StoreBackendS3    = "s3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "redis" (default) or "s3"
	SeedFile     string // optional YAML file to pre-seed an empty store
	StaticDir    string // directory of website assets ("" = static serving disabled)

	// Auth
	AdminPasswordHash string        // bcrypt hash of the operator password
	SessionTTL        time.Duration // session cookie/token lifetime (default: 7 days)
	SecureCookies     bool          // Secure attribute on the session cookie
	LoginRateBurst    int           // login rate limit: bucket size per IP
	LoginRatePerMin   int           // login rate limit: refill per IP per minute

	// Redis (default document backend + session tokens)
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between connect retries
	RedisPingTimeout      time.Duration
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration
	RedisRetryInterval    time.Duration
	RedisWarnThreshold    int

	// S3-compatible object storage (backend "s3")
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	S3Bucket    string
	S3ObjectKey string // object key of the document, ex: "sites.json"

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // optional, allowed CORS origins (empty = same-origin only)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKDECK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKDECK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKDECK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKDECK_PRETTY_LOG", true),

		// Directory document
		StoreBackend: getenv("LINKDECK_STORE_BACKEND", StoreBackendRedis),
		SeedFile:     getenv("LINKDECK_SEED_FILE", ""),
		StaticDir:    getenv("LINKDECK_STATIC_DIR", ""),

		// Auth
		AdminPasswordHash: requireEnv("LINKDECK_ADMIN_PASSWORD_HASH"),
		SessionTTL:        mustDuration("LINKDECK_SESSION_TTL", 7*24*time.Hour),
		SecureCookies:     mustBool("LINKDECK_SECURE_COOKIES", true),
		LoginRateBurst:    getenvInt("LINKDECK_LOGIN_RATE_BURST", 5),
		LoginRatePerMin:   getenvInt("LINKDECK_LOGIN_RATE_PER_MIN", 10),

		// Redis settings
		RedisAddr:             requireEnv("LINKDECK_REDIS_ADDR"),
		RedisUser:             getenv("LINKDECK_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LINKDECK_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("LINKDECK_REDIS_PASSWORD", ""),
		RedisDB:               requireEnvInt("LINKDECK_REDIS_DB"),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Object storage settings (only used with LINKDECK_STORE_BACKEND=s3)
		S3Endpoint:  getenv("LINKDECK_S3_ENDPOINT", ""),
		S3AccessKey: getenv("LINKDECK_S3_ACCESS_KEY", ""),
		S3SecretKey: getenv("LINKDECK_S3_SECRET_KEY", ""),
		S3UseSSL:    mustBool("LINKDECK_S3_USE_SSL", true),
		S3Bucket:    getenv("LINKDECK_S3_BUCKET", ""),
		S3ObjectKey: getenv("LINKDECK_S3_OBJECT_KEY", "sites.json"),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("LINKDECK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("LINKDECK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LINKDECK_TRUST_PROXY", true),
		CORSOrigins:  splitAndTrim(getenv("LINKDECK_CORS_ORIGINS", "")),
	}

	validate(cfg)

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.AdminPasswordHash = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.S3SecretKey = "***REDACTED***"
		if cfgCopy.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func validate(cfg *Config) {
	switch cfg.StoreBackend {
	case StoreBackendRedis:
		// Redis settings are always required (session tokens live there).
	case StoreBackendS3:
		if cfg.S3Endpoint == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" || cfg.S3Bucket == "" {
			panic("❌ FATAL: LINKDECK_S3_ENDPOINT, LINKDECK_S3_ACCESS_KEY, LINKDECK_S3_SECRET_KEY and LINKDECK_S3_BUCKET are required when LINKDECK_STORE_BACKEND=s3")
		}
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown LINKDECK_STORE_BACKEND %q (want %q or %q)",
			cfg.StoreBackend, StoreBackendRedis, StoreBackendS3))
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LINKDECK_REDIS_PASSWORD is required when LINKDECK_REDIS_PASSWORD_REQUIRED=true")
	}
	if !strings.HasPrefix(cfg.AdminPasswordHash, "$2") {
		panic("❌ FATAL: LINKDECK_ADMIN_PASSWORD_HASH must be a bcrypt hash, not a plaintext password")
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
