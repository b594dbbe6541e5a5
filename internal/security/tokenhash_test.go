package security

import "testing"

func TestHashToken(t *testing.T) {
	h1 := HashToken("token-a")
	h2 := HashToken("token-a")
	h3 := HashToken("token-b")
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if h1 == h3 {
		t.Error("distinct tokens hash to the same key")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if h1 == "token-a" {
		t.Error("hash must not contain the raw token")
	}
}

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcryptTestCost)
	hash, err := h.Hash([]byte("s3cret-Passw0rd!"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, []byte("s3cret-Passw0rd!")); err != nil {
		t.Errorf("Compare(correct) = %v", err)
	}
	if err := h.Compare(hash, []byte("wrong")); err == nil {
		t.Error("Compare(wrong): expected error")
	}
}

// Minimum bcrypt cost keeps the test fast.
const bcryptTestCost = 4
