package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("Hash must not equal the plaintext")
	}
	if !CheckPasswordHash("hunter2", hash) {
		t.Error("Expected the correct password to verify")
	}
	if CheckPasswordHash("hunter3", hash) {
		t.Error("Expected a wrong password to fail verification")
	}
}

func TestPasswordHashIsSalted(t *testing.T) {
	h1, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Expected two hashes of the same password to differ")
	}
}
