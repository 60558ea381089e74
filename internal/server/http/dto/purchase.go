package dto

import (
	"time"

	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// BuyRequest names the product being bought.
type BuyRequest struct {
	ProductID string `json:"productId"`
}

// PurchaseResponse describes a completed purchase.
type PurchaseResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BuyResponse confirms a purchase.
type BuyResponse struct {
	Message  string           `json:"message"`
	Purchase PurchaseResponse `json:"purchase"`
}

// NewPurchaseResponse maps a purchase model onto the wire shape.
func NewPurchaseResponse(p *model.Purchase) PurchaseResponse {
	return PurchaseResponse{ID: p.ID, ProductID: p.ProductID, CreatedAt: p.CreatedAt}
}

// NewPurchaseResponses maps a purchase slice onto the wire shape.
func NewPurchaseResponses(purchases []model.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, NewPurchaseResponse(&purchases[i]))
	}
	return out
}
