package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
	"github.com/mtkshopping/marketplace/internal/domain/repository"
)

// ReferralUseCase owns the referrer relation and the commission rule.
type ReferralUseCase struct {
	users  repository.UserRepository
	rate   float64
	logger *slog.Logger
}

// NewReferralUseCase constructs ReferralUseCase with the commission rate
// applied to referred purchases.
func NewReferralUseCase(users repository.UserRepository, rate float64, logger *slog.Logger) *ReferralUseCase {
	return &ReferralUseCase{users: users, rate: rate, logger: logger}
}

// Link resolves refCode and marks user as referred by its owner. The link
// is established once, at registration: a user that already carries a
// referrer keeps it. An unknown code is ignored so that registration never
// depends on the referral being valid.
func (u *ReferralUseCase) Link(ctx context.Context, user *model.User, refCode string) error {
	refCode = strings.TrimSpace(refCode)
	if refCode == "" || user.ReferredBy != nil {
		return nil
	}

	referrer, err := u.users.GetByReferralCode(ctx, refCode)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Info("unknown referral code ignored", slog.String("code", refCode))
			return nil
		}
		return err
	}

	if referrer.ID == user.ID {
		return nil
	}

	referrerID := referrer.ID
	user.ReferredBy = &referrerID
	return nil
}

// CommissionFor computes the credit owed to the buyer's direct referrer
// for the given product. It returns nil when no credit applies: the buyer
// has no referrer, the referrer record is gone, or the product is free.
// Only one hop is ever credited.
func (u *ReferralUseCase) CommissionFor(ctx context.Context, buyer *model.User, product *model.Product) (*model.Commission, error) {
	if buyer.ReferredBy == nil {
		return nil, nil
	}

	referrer, err := u.users.GetByID(ctx, *buyer.ReferredBy)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.logger.Warn("referrer record missing, commission skipped",
				slog.String("buyer", buyer.ID),
				slog.String("referrer", *buyer.ReferredBy),
			)
			return nil, nil
		}
		return nil, err
	}

	amount := u.rate * product.Price
	if amount == 0 {
		return nil, nil
	}

	return &model.Commission{ReferrerID: referrer.ID, Amount: amount}, nil
}

// Summary aggregates the user's affiliate standing: how many accounts were
// recruited with their code, who they are, and the accrued balance.
func (u *ReferralUseCase) Summary(ctx context.Context, userID string) (*model.ReferralSummary, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referred, err := u.users.ListReferrals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.ReferralSummary{Total: len(referred), Balance: user.Balance, Referred: referred}, nil
}

// Balance returns the user's accrued commission balance.
func (u *ReferralUseCase) Balance(ctx context.Context, userID string) (float64, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}
