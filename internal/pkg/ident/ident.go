package ident

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// Generator produces opaque record identifiers and short referral codes.
type Generator interface {
	NewID() string
	NewReferralCode() (string, error)
}

const (
	codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// UUIDGenerator backs identifiers with UUIDv4 and referral codes with
// short random strings suitable for sharing in links.
type UUIDGenerator struct{}

// NewUUIDGenerator constructs UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh opaque identifier.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewReferralCode returns a short public code unique enough to name a
// referrer. Uniqueness is ultimately enforced by the storage layer.
func (g *UUIDGenerator) NewReferralCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
