package app

import (
	"context"

	"github.com/mtkshopping/marketplace/internal/domain/model"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/usecase"
)

// MarketFacade aggregates use cases behind the HTTP handler contracts.
type MarketFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	purchases *usecase.PurchaseUseCase
	referrals *usecase.ReferralUseCase
}

func NewMarketFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, purchases *usecase.PurchaseUseCase, referrals *usecase.ReferralUseCase) *MarketFacade {
	return &MarketFacade{auth: auth, catalog: catalog, purchases: purchases, referrals: referrals}
}

func (f *MarketFacade) Register(ctx context.Context, email, password string, role model.Role, refCode string) (*model.User, error) {
	return f.auth.Register(ctx, email, password, role, refCode)
}

func (f *MarketFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) CreateProduct(ctx context.Context, identity pkgAuth.Identity, name string, price float64) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, identity, name, price)
}

func (f *MarketFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *MarketFacade) Buy(ctx context.Context, identity pkgAuth.Identity, productID string) (*model.Purchase, error) {
	return f.purchases.Buy(ctx, identity, productID)
}

func (f *MarketFacade) Purchases(ctx context.Context, buyerID string) ([]model.Purchase, error) {
	return f.purchases.History(ctx, buyerID)
}

func (f *MarketFacade) Referrals(ctx context.Context, userID string) (*model.ReferralSummary, error) {
	return f.referrals.Summary(ctx, userID)
}

func (f *MarketFacade) Balance(ctx context.Context, userID string) (float64, error) {
	return f.referrals.Balance(ctx, userID)
}
