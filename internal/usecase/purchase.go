package usecase

import (
	"context"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
	"github.com/mtkshopping/marketplace/internal/domain/repository"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/pkg/ident"
)

// PurchaseUseCase orchestrates the buy workflow: role check, product and
// buyer resolution, commission computation, atomic persistence.
type PurchaseUseCase struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	purchases repository.PurchaseRepository
	referrals *ReferralUseCase
	ids       ident.Generator
}

// NewPurchaseUseCase constructs PurchaseUseCase.
func NewPurchaseUseCase(users repository.UserRepository, products repository.ProductRepository, purchases repository.PurchaseRepository, referrals *ReferralUseCase, ids ident.Generator) *PurchaseUseCase {
	return &PurchaseUseCase{users: users, products: products, purchases: purchases, referrals: referrals, ids: ids}
}

// Buy executes a purchase for the authenticated customer. The purchase
// record and the referrer credit are persisted as one unit: a failed write
// leaves neither visible.
func (u *PurchaseUseCase) Buy(ctx context.Context, identity pkgAuth.Identity, productID string) (*model.Purchase, error) {
	if identity.Role != model.RoleCustomer {
		return nil, domainErrors.ErrForbidden
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	buyer, err := u.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	commission, err := u.referrals.CommissionFor(ctx, buyer, product)
	if err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		ID:        u.ids.NewID(),
		ProductID: product.ID,
		BuyerID:   buyer.ID,
	}

	if err := u.purchases.Create(ctx, purchase, commission); err != nil {
		return nil, err
	}

	return purchase, nil
}

// History returns the buyer's purchases sorted by time.
func (u *PurchaseUseCase) History(ctx context.Context, buyerID string) ([]model.Purchase, error) {
	return u.purchases.ListByBuyer(ctx, buyerID)
}
