package repository

import (
	"context"

	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// UserRepository describes persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByReferralCode(ctx context.Context, code string) (*model.User, error)
	ListReferrals(ctx context.Context, referrerID string) ([]model.ReferredUser, error)
}
