package test

import (
	"context"

	"github.com/mtkshopping/marketplace/internal/domain/model"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (pkgAuth.Identity, error)
}

// Register returns a created user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string, role model.Role, refCode string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, role, refCode)
	}
	return &model.User{ID: "u-1", Email: email, Role: model.RoleCustomer, ReferralCode: "abc123"}, nil
}

// Authenticate returns a token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ParseToken returns the stored identity for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Identity{UserID: "u-1", Role: model.RoleCustomer}, nil
}

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	CreateFn   func(context.Context, pkgAuth.Identity, string, float64) (*model.Product, error)
	ProductsFn func(context.Context) ([]model.Product, error)
}

// CreateProduct delegates to the override or returns a default product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, identity pkgAuth.Identity, name string, price float64) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, identity, name, price)
	}
	return &model.Product{ID: "p-1", Name: name, Price: price, SellerID: identity.UserID}, nil
}

// Products returns predefined catalog contents.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "p-1", Name: "Widget", Price: 100}}, nil
}

// PurchaseFacadeStub simulates buy operations.
type PurchaseFacadeStub struct {
	BuyFn       func(context.Context, pkgAuth.Identity, string) (*model.Purchase, error)
	PurchasesFn func(context.Context, string) ([]model.Purchase, error)
}

// Buy delegates to the override or returns a default purchase.
func (s PurchaseFacadeStub) Buy(ctx context.Context, identity pkgAuth.Identity, productID string) (*model.Purchase, error) {
	if s.BuyFn != nil {
		return s.BuyFn(ctx, identity, productID)
	}
	return &model.Purchase{ID: "pur-1", ProductID: productID, BuyerID: identity.UserID}, nil
}

// Purchases returns preconfigured history.
func (s PurchaseFacadeStub) Purchases(ctx context.Context, buyerID string) ([]model.Purchase, error) {
	if s.PurchasesFn != nil {
		return s.PurchasesFn(ctx, buyerID)
	}
	return []model.Purchase{{ID: "pur-1", BuyerID: buyerID}}, nil
}

// ReferralFacadeStub simulates affiliate queries.
type ReferralFacadeStub struct {
	ReferralsFn func(context.Context, string) (*model.ReferralSummary, error)
	BalanceFn   func(context.Context, string) (float64, error)
}

// Referrals returns the stored summary or default data.
func (s ReferralFacadeStub) Referrals(ctx context.Context, userID string) (*model.ReferralSummary, error) {
	if s.ReferralsFn != nil {
		return s.ReferralsFn(ctx, userID)
	}
	return &model.ReferralSummary{Total: 1, Balance: 10, Referred: []model.ReferredUser{{ID: "u-2", Email: "ref@example.com"}}}, nil
}

// Balance returns the configured balance.
func (s ReferralFacadeStub) Balance(ctx context.Context, userID string) (float64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return 10, nil
}

// MarketFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	PurchaseFacadeStub
	ReferralFacadeStub
}
