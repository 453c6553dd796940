package service

import "testing"

func TestHashPassword_Deterministic(t *testing.T) {
	a := HashPassword("s3cret")
	b := HashPassword("s3cret")
	if a != b {
		t.Fatalf("same input produced different digests: %s vs %s", a, b)
	}
	if a == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestHashPassword_DistinctInputs(t *testing.T) {
	if HashPassword("alpha") == HashPassword("beta") {
		t.Fatalf("different inputs produced the same digest")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("correct horse")

	if !VerifyPassword(digest, "correct horse") {
		t.Fatalf("expected match for correct password")
	}
	if VerifyPassword(digest, "wrong horse") {
		t.Fatalf("expected mismatch for wrong password")
	}
	if VerifyPassword("", "anything") {
		t.Fatalf("expected mismatch for empty stored digest")
	}
}
