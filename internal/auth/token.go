package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"

	"github.com/sakif/staffdesk/internal/model"
)

const issuer = "staffdesk"

// DefaultTokenTTL matches the console's session length.
const DefaultTokenTTL = 3 * time.Hour

// Verification failure classes. The middleware treats all three as 403, but
// they are distinct so tests and logs can tell tampering from expiry.
var (
	ErrTokenExpired   = errors.New("auth: token expired")
	ErrTokenInvalid   = errors.New("auth: token signature invalid")
	ErrTokenMalformed = errors.New("auth: token malformed")
)

// Claims is the JWT payload: the principal's non-secret identity fields plus
// the registered claims. The password hash is never part of a token.
//
// ID (the "jti" claim) uniquely identifies each issued token. Nothing reads
// it today; a future revocation denylist would key on it.
type Claims struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with a process-wide HMAC
// secret. The secret is injected at construction, never read from globals,
// so tests can run isolated services with distinct secrets.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. The secret must be at least 16
// characters; a non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// TTL reports the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a new token carrying the user's identity claims, expiring
// ttl from now. HS256 only.
func (s *TokenService) Issue(user *model.User) (string, error) {
	return s.IssueWithTTL(user, s.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime. Expiry tests issue
// already-expired tokens through this.
func (s *TokenService) IssueWithTTL(user *model.User, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        xid.New().String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verify parses tokenStr, checks the HMAC signature, issuer, and expiry, and
// returns the embedded claims.
//
// Failures map to exactly one of ErrTokenExpired, ErrTokenMalformed, or
// ErrTokenInvalid. Restricting the accepted methods to HS256 closes the
// algorithm-confusion hole where a token signed with "none" slips through.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("auth: unexpected signing method: %v", token.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == 0 || claims.Email == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
