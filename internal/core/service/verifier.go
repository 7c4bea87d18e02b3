package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier compares a presented secret against the stored one.
// The session service never looks at secrets directly, so swapping the
// plaintext fixture directory for a hashed one is a constructor change.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// PlaintextVerifier matches the demo fixture directory: exact, case-sensitive
// comparison in constant time.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// BcryptVerifier treats the stored secret as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
