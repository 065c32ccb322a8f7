package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	ps := NewPasswordServiceForTest()

	digest, err := ps.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if digest == "" || digest == "secret1" {
		t.Fatal("Hash() must return a non-empty digest distinct from the input")
	}

	if err := ps.Verify(digest, "secret1"); err != nil {
		t.Errorf("Verify() with correct password error = %v", err)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	ps := NewPasswordServiceForTest()

	digest, _ := ps.Hash("secret1")

	err := ps.Verify(digest, "secret2")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Verify() error = %v, want ErrPasswordMismatch", err)
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	ps := NewPasswordServiceForTest()

	err := ps.Verify("not-a-bcrypt-digest", "secret1")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Verify() on malformed digest error = %v, want ErrPasswordMismatch", err)
	}
}

func TestHash_SamePasswordDifferentDigests(t *testing.T) {
	ps := NewPasswordServiceForTest()

	d1, _ := ps.Hash("secret1")
	d2, _ := ps.Hash("secret1")

	// Fresh salt per call
	if d1 == d2 {
		t.Error("Hash() should produce different digests for repeated calls")
	}
}

func TestHash_TooLong(t *testing.T) {
	ps := NewPasswordServiceForTest()

	_, err := ps.Hash(strings.Repeat("x", 73))
	if err == nil {
		t.Fatal("Hash() should reject passwords longer than 72 bytes")
	}
}

func TestNewPasswordService_LowCostFallsBack(t *testing.T) {
	ps := NewPasswordService(0)
	if ps.cost != DefaultBcryptCost {
		t.Errorf("cost = %d, want %d", ps.cost, DefaultBcryptCost)
	}
}
