package bcrypt

import "testing"

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "secret" {
		t.Fatalf("hash should not equal the plaintext")
	}
	if err := ComparePassword(hash, "secret"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatalf("expected password mismatch")
	}
}
