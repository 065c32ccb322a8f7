// Package auth implements the credential core: bcrypt password hashing, JWT
// issuance and verification, and the middleware that gates protected routes.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when the config does not set one.
const DefaultBcryptCost = 12

// ErrPasswordMismatch is returned by Verify when the plaintext does not match
// the stored digest. Callers treat it as "wrong password", not a failure.
var ErrPasswordMismatch = errors.New("auth: password mismatch")

// PasswordService hashes and verifies passwords with bcrypt. The cost is
// injectable so tests can use the bcrypt minimum instead of paying ~250ms per
// hash.
type PasswordService struct {
	cost int
}

// NewPasswordService returns a PasswordService with the given cost. A cost
// below bcrypt's minimum falls back to DefaultBcryptCost.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	return &PasswordService{cost: cost}
}

// NewPasswordServiceForTest returns a PasswordService at bcrypt.MinCost.
// Test use only.
func NewPasswordServiceForTest() *PasswordService {
	return &PasswordService{cost: bcrypt.MinCost}
}

// Hash returns the bcrypt digest of plaintext. The digest embeds a fresh
// random salt and the cost, so hashing the same input twice yields different
// digests and no separate salt column is needed.
//
// bcrypt silently truncates inputs beyond 72 bytes, so longer passwords are
// rejected instead.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify checks plaintext against a stored digest. It returns
// ErrPasswordMismatch on a wrong password and also on a malformed digest —
// a corrupt stored hash must never authenticate anyone. The comparison is
// constant-time inside bcrypt.
func (p *PasswordService) Verify(digest, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	if err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
