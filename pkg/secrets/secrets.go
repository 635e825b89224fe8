// Package secrets generates one-time keys and hashes passwords.
package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	dErrors "credmgr/pkg/domain-errors"
)

const (
	// KeyBytes is the entropy of generated activation and reset keys.
	KeyBytes = 20

	DefaultCost = bcrypt.DefaultCost
)

// GenerateKey returns a random hex key suitable for activation and reset links.
func GenerateKey() (string, error) {
	buf := make([]byte, KeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate key")
	}
	return hex.EncodeToString(buf), nil
}

// Hasher hashes passwords with bcrypt at a fixed cost. Secrets are digested
// with SHA-256 first so inputs beyond bcrypt's 72-byte limit stay significant.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A cost outside bcrypt's range falls back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (h *Hasher) Hash(secret string) ([]byte, error) {
	if secret == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "secret cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword(prehash(secret), h.cost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "could not hash secret")
	}
	return hashed, nil
}

// Verify reports whether secret matches hash.
func Verify(secret string, hash []byte) error {
	if err := bcrypt.CompareHashAndPassword(hash, prehash(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid secret")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify secret")
	}
	return nil
}

func prehash(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
