package config

import (
	"reflect"
	"testing"
	"time"
)

// testHash is a valid bcrypt shape, enough for config validation.
const testHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LINKDECK_ADMIN_PASSWORD_HASH", testHash)
	t.Setenv("LINKDECK_REDIS_ADDR", "localhost:6379")
	t.Setenv("LINKDECK_REDIS_DB", "0")
	t.Setenv("LINKDECK_REDIS_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.StoreBackend != StoreBackendRedis {
		t.Errorf("StoreBackend = %q, want redis default", cfg.StoreBackend)
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Errorf("SessionTTL = %v, want 7 days", cfg.SessionTTL)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies should default to true")
	}
	if cfg.LoginRateBurst != 5 || cfg.LoginRatePerMin != 10 {
		t.Errorf("login rate defaults = %d/%d, want 5/10", cfg.LoginRateBurst, cfg.LoginRatePerMin)
	}
}

func TestLoadRejectsPlaintextPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDECK_ADMIN_PASSWORD_HASH", "hunter2")

	defer func() {
		if recover() == nil {
			t.Error("Load() should panic when the password hash looks like plaintext")
		}
	}()
	Load()
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDECK_STORE_BACKEND", "postgres")

	defer func() {
		if recover() == nil {
			t.Error("Load() should panic on an unknown store backend")
		}
	}()
	Load()
}

func TestLoadS3BackendRequiresSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDECK_STORE_BACKEND", "s3")

	defer func() {
		if recover() == nil {
			t.Error("Load() should panic when s3 backend lacks endpoint/credentials")
		}
	}()
	Load()
}

func TestLoadS3Backend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LINKDECK_STORE_BACKEND", "s3")
	t.Setenv("LINKDECK_S3_ENDPOINT", "s3.example.com")
	t.Setenv("LINKDECK_S3_ACCESS_KEY", "key")
	t.Setenv("LINKDECK_S3_SECRET_KEY", "secret")
	t.Setenv("LINKDECK_S3_BUCKET", "linkdeck")

	cfg := Load()
	if cfg.StoreBackend != StoreBackendS3 {
		t.Errorf("StoreBackend = %q, want s3", cfg.StoreBackend)
	}
	if cfg.S3ObjectKey != "sites.json" {
		t.Errorf("S3ObjectKey = %q, want sites.json default", cfg.S3ObjectKey)
	}
}

func TestRequireEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")
	if got := requireEnv("TEST_VAR"); got != "test_value" {
		t.Errorf("requireEnv() = %v, want test_value", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("requireEnv() should panic on a missing variable")
		}
	}()
	requireEnv("TEST_VAR_MISSING")
}

func TestRequireEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := requireEnvInt("TEST_INT"); got != 42 {
		t.Errorf("requireEnvInt() = %v, want 42", got)
	}

	t.Setenv("TEST_INT_INVALID", "not_a_number")
	defer func() {
		if recover() == nil {
			t.Error("requireEnvInt() should panic on a non-integer value")
		}
	}()
	requireEnvInt("TEST_INT_INVALID")
}

func TestMustDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	if got := mustDuration("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("mustDuration() = %v, want 90s", got)
	}
	if got := mustDuration("TEST_DUR_MISSING", 3*time.Second); got != 3*time.Second {
		t.Errorf("mustDuration() default = %v, want 3s", got)
	}
	t.Setenv("TEST_DUR_BAD", "tomorrow")
	if got := mustDuration("TEST_DUR_BAD", 5*time.Second); got != 5*time.Second {
		t.Errorf("mustDuration() on invalid value = %v, want default", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "simple list", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "spaces and quotes", input: ` "a" , 'b' ,, c `, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitAndTrim(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
