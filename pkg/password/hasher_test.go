package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("12345")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "12345" {
		t.Fatal("expected hash to differ from plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !h.Verify("12345", hash) {
		t.Fatal("expected password to verify against its hash")
	}
	if h.Verify("54321", hash) {
		t.Fatal("expected wrong password to be rejected")
	}
}

func TestHasher_SaltsEveryHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatal("expected two hashes of the same password to differ")
	}
	if !h.Verify("same", a) || !h.Verify("same", b) {
		t.Fatal("both hashes must verify")
	}
}

func TestHasher_VerifyGarbageHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Verify("pwd", "not-a-hash") {
		t.Fatal("expected malformed hash to fail verification")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	if got := NewHasher(0).Cost(); got != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, got)
	}
	if got := NewHasher(99).Cost(); got != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, got)
	}
	if got := NewHasher(bcrypt.MinCost).Cost(); got != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, got)
	}
}
