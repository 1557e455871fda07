package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialCodec isolates how account secrets are stored and compared.
// The service historically stores secrets verbatim and hands them back to
// the trusted internal caller, so the plaintext codec is the default; the
// bcrypt codec exists so hashing can be switched on without touching the
// account manager's contract.
type CredentialCodec interface {
	Store(secret string) (string, error)
	Verify(stored, given string) bool
}

type PlaintextCodec struct{}

func (PlaintextCodec) Store(secret string) (string, error) {
	return secret, nil
}

func (PlaintextCodec) Verify(stored, given string) bool {
	return stored == given
}

type BcryptCodec struct{}

func (BcryptCodec) Store(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}

	return string(hashed), nil
}

func (BcryptCodec) Verify(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
