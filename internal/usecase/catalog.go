package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/domain/model"
	"github.com/mtkshopping/marketplace/internal/domain/repository"
	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/pkg/ident"
)

// CatalogUseCase encapsulates product listing logic.
type CatalogUseCase struct {
	products repository.ProductRepository
	ids      ident.Generator
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, ids ident.Generator) *CatalogUseCase {
	return &CatalogUseCase{products: products, ids: ids}
}

// CreateProduct lists a new product. Only sellers may list.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, identity pkgAuth.Identity, name string, price float64) (*model.Product, error) {
	if identity.Role != model.RoleSeller {
		return nil, domainErrors.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" || price < 0 {
		return nil, domainErrors.ErrInvalidPrice
	}

	product := &model.Product{
		ID:       u.ids.NewID(),
		Name:     name,
		Price:    price,
		SellerID: identity.UserID,
	}

	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// List returns the full catalog.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}
