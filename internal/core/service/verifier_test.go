package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}

	if !v.Verify("pw1", "pw1") {
		t.Fatalf("exact match rejected")
	}
	if v.Verify("pw1", "PW1") {
		t.Fatalf("case-insensitive match accepted")
	}
	if v.Verify("pw1", "pw1 ") {
		t.Fatalf("trailing whitespace accepted")
	}
	if v.Verify("pw1", "") {
		t.Fatalf("empty secret accepted")
	}
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	v := BcryptVerifier{}
	if !v.Verify(string(hash), "s3cret") {
		t.Fatalf("valid password rejected")
	}
	if v.Verify(string(hash), "wrong") {
		t.Fatalf("wrong password accepted")
	}
	if v.Verify("not-a-hash", "s3cret") {
		t.Fatalf("malformed hash accepted")
	}
}
