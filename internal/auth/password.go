// Package auth implements the operator login: bcrypt password
// verification and redis-backed session tokens. The rest of the system
// only ever sees the resulting authenticated/anonymous boolean.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword is returned when the supplied password does not
// match the configured hash.
var ErrInvalidPassword = errors.New("invalid password")

// VerifyPassword compares a login attempt against the configured bcrypt
// hash. The configuration carries only the hash, never the plaintext.
func VerifyPassword(hash, password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
