package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefixSession is the prefix for session token keys.
const KeyPrefixSession = "linkdeck:session:"

// sessionData is the value stored per token, kept for diagnostics.
type sessionData struct {
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps opaque operator session tokens in Redis with a TTL.
// Tokens are bearer credentials transported in an HttpOnly cookie.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a session store with the given token lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create mints a new random token and stores it with the configured TTL.
func (s *SessionStore) Create(ctx context.Context) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	data, err := json.Marshal(sessionData{CreatedAt: time.Now().UTC()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Validate reports whether a token is a live session.
func (s *SessionStore) Validate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	err := s.client.Get(ctx, sessionKey(token)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

// Revoke deletes a session token (logout).
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return KeyPrefixSession + token
}

// generateToken creates a secure random token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
