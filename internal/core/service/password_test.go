package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
)

func TestHashPassword_Format(t *testing.T) {
	stored, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		t.Fatalf("expected salt:key format, got %q", stored)
	}
	if len(parts[0]) != 32 {
		t.Fatalf("expected 16-byte hex salt (32 chars), got %d chars", len(parts[0]))
	}
	if len(parts[1]) != 128 {
		t.Fatalf("expected 64-byte hex key (128 chars), got %d chars", len(parts[1]))
	}
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	stored, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	ok, err := VerifyPassword("correct horse", stored)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong horse", stored)
	if err != nil {
		t.Fatalf("VerifyPassword returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatching password to fail verification")
	}
}

func TestHashPassword_SaltRandomness(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ")
	}
	if strings.Split(first, ":")[0] == strings.Split(second, ":")[0] {
		t.Fatalf("two hashes of the same password must use different salts")
	}

	for _, stored := range []string{first, second} {
		ok, err := VerifyPassword("same-input", stored)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify against the original password (ok=%v err=%v)", ok, err)
		}
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, stored := range []string{"", "no-separator", "a:b:c", ":", "abc:", ":def"} {
		if _, err := VerifyPassword("anything", stored); !errors.Is(err, domain.ErrMalformedCredential) {
			t.Fatalf("stored %q: expected ErrMalformedCredential, got %v", stored, err)
		}
	}
}
