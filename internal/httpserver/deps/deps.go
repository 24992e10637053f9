package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkdeck/linkdeck/internal/auth"
	"github.com/linkdeck/linkdeck/internal/directory"
	"github.com/linkdeck/linkdeck/internal/logger"
	"github.com/linkdeck/linkdeck/internal/store"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the ops endpoints
	AllowedCIDRS []string         // IPs allowed to access healthz/readyz/infra endpoints
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RedisClient *redis.Client      // Redis client connection (sessions, default document backend)
	Store       store.Store        // Document store (redis or s3)
	Directory   *directory.Service // Read/write orchestration over the store
	Sessions    *auth.SessionStore // Operator session tokens

	AdminPasswordHash string        // bcrypt hash checked at login
	SecureCookies     bool          // Secure attribute on the session cookie
	SessionTTL        time.Duration // Session cookie/token lifetime
	LoginRateBurst    int           // Login rate limit: bucket size per IP
	LoginRatePerMin   int           // Login rate limit: refill per IP per minute

	StaticDir   string   // Directory of website assets ("" = static serving disabled)
	CORSOrigins []string // Allowed CORS origins (empty = same-origin only)
}
