// Package passwords turns plaintext credentials into stored hashes.
package passwords

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a plaintext does not match a stored hash.
var ErrMismatch = errors.New("password does not match")

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
	// Deterministic reports whether Hash always returns the same output for
	// the same input, so stored hashes can be matched in a query.
	Deterministic() bool
}

// SHA256 is an unsalted SHA-256 digest, base64 encoded.
type SHA256 struct{}

// Hash returns base64(sha256(plain)).
func (SHA256) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Compare re-hashes plain and compares digests in constant time.
func (h SHA256) Compare(hash, plain string) error {
	got, _ := h.Hash(plain)
	if subtle.ConstantTimeCompare([]byte(got), []byte(hash)) != 1 {
		return ErrMismatch
	}
	return nil
}

func (SHA256) Deterministic() bool { return true }

// Bcrypt is a salted, slow hash.
type Bcrypt struct {
	Cost int
}

// Hash returns a bcrypt hash of plain.
func (b Bcrypt) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks plain against a bcrypt hash.
func (Bcrypt) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrMismatch
	}
	return nil
}

func (Bcrypt) Deterministic() bool { return false }

// New returns the hasher registered under name.
func New(name string) (Hasher, error) {
	switch name {
	case "", "sha256":
		return SHA256{}, nil
	case "bcrypt":
		return Bcrypt{}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}
