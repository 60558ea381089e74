package model

import "time"

// Role distinguishes buying and selling accounts.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleSeller
}

// User represents a registered marketplace account.
// ReferredBy is set at most once, at registration, and never changes.
// Balance accumulates affiliate commissions and only grows.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	ReferralCode string
	ReferredBy   *string
	Balance      float64
	CreatedAt    time.Time
}
