package handlers

import (
	"context"

	"github.com/mtkshopping/marketplace/internal/domain/model"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string, role model.Role, refCode string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (pkgAuth.Identity, error)
}

// CatalogFacade encapsulates product operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, identity pkgAuth.Identity, name string, price float64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
}

// PurchaseFacade provides buying operations.
type PurchaseFacade interface {
	Buy(ctx context.Context, identity pkgAuth.Identity, productID string) (*model.Purchase, error)
	Purchases(ctx context.Context, buyerID string) ([]model.Purchase, error)
}

// ReferralFacade exposes affiliate bookkeeping queries.
type ReferralFacade interface {
	Referrals(ctx context.Context, userID string) (*model.ReferralSummary, error)
	Balance(ctx context.Context, userID string) (float64, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	CatalogFacade
	PurchaseFacade
	ReferralFacade
}
