package repository

import (
	"context"

	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// PurchaseRepository appends purchase records. Create applies the optional
// referrer commission in the same transaction as the purchase insert, so
// either both become durable or neither does.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase, commission *model.Commission) error
	ListByBuyer(ctx context.Context, buyerID string) ([]model.Purchase, error)
}
