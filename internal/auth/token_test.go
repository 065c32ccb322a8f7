package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sakif/staffdesk/internal/model"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret-at-least-16-chars!!", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func testUser() *model.User {
	return &model.User{
		UserID:    42,
		FirstName: "A",
		LastName:  "B",
		Email:     "a@b.com",
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short", time.Hour)
	if err == nil {
		t.Fatal("NewTokenService() should reject secrets shorter than 16 chars")
	}
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	ts, err := NewTokenService("this-is-16-chars", 0)
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	if ts.TTL() != DefaultTokenTTL {
		t.Errorf("TTL() = %v, want %v", ts.TTL(), DefaultTokenTTL)
	}
}

func TestIssue_LooksLikeJWT(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("Issue() token has %d segments, want 3", len(parts))
	}
}

func TestVerify_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t)
	user := testUser()

	token, err := ts.Issue(user)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != user.UserID {
		t.Errorf("UserID = %d, want %d", claims.UserID, user.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.FirstName != user.FirstName || claims.LastName != user.LastName {
		t.Errorf("name claims = %q %q, want %q %q",
			claims.FirstName, claims.LastName, user.FirstName, user.LastName)
	}
	if claims.ID == "" {
		t.Error("claims.ID (jti) should be set")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("ExpiresAt should be in the future")
	}
}

func TestVerify_Expired(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.IssueWithTTL(testUser(), -time.Second)
	if err != nil {
		t.Fatalf("IssueWithTTL() error = %v", err)
	}

	_, err = ts.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	ts1, _ := NewTokenService("correct-secret-32-chars-long!!!!", time.Hour)
	ts2, _ := NewTokenService("another-secret-32-chars-long!!!!", time.Hour)

	token, _ := ts1.Issue(testUser())

	_, err := ts2.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("Verify() error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	ts := newTestTokenService(t)

	token, _ := ts.Issue(testUser())
	tampered := token[:len(token)-3] + "xxx"

	_, err := ts.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalid) && !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("Verify() error = %v, want ErrTokenInvalid or ErrTokenMalformed", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	ts := newTestTokenService(t)

	token, _ := ts.Issue(testUser())
	parts := strings.Split(token, ".")
	// Flip a character in the payload segment; the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := ts.Verify(tampered); err == nil {
		t.Fatal("Verify() should reject a token with a modified payload")
	}
}

func TestVerify_Truncated(t *testing.T) {
	ts := newTestTokenService(t)

	token, _ := ts.Issue(testUser())

	if _, err := ts.Verify(token[:len(token)-1]); err == nil {
		t.Fatal("Verify() should reject a truncated token")
	}
}

func TestVerify_Malformed(t *testing.T) {
	ts := newTestTokenService(t)

	for _, bad := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		if _, err := ts.Verify(bad); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("Verify(%q) error = %v, want ErrTokenMalformed", bad, err)
		}
	}
}

func TestIssue_DifferentUsersGetDifferentTokens(t *testing.T) {
	ts := newTestTokenService(t)

	u1 := testUser()
	u2 := testUser()
	u2.UserID = 43
	u2.Email = "c@d.com"

	t1, _ := ts.Issue(u1)
	t2, _ := ts.Issue(u2)

	if t1 == t2 {
		t.Error("Issue() returned identical tokens for different users")
	}
}
