package auth

import (
	"time"

	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// Identity is the minimal set of claims a session token carries.
type Identity struct {
	UserID string
	Role   model.Role
}

// Strategy issues and verifies signed session tokens.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
