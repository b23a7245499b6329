package auth

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/merchkeeper/internal/common"
)

func TestHashAndCheck_Success(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("secret123", digest)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to match its own digest")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := CheckPassword("wrong-password", digest)
	if err != nil {
		t.Fatalf("mismatch must not produce an error, got: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch for a different password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("two digests of the same password must differ, got %q twice", d1)
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	_, err := CheckPassword("pw", "not-a-bcrypt-digest")
	if err == nil {
		t.Fatalf("expected error for malformed digest")
	}
	if !errors.Is(err, common.ErrHashing) {
		t.Fatalf("expected common.ErrHashing, got %v", err)
	}
}
