package dto

import (
	"time"

	"github.com/mtkshopping/marketplace/internal/domain/model"
)

// CreateProductRequest describes a new catalog listing.
type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	SellerID  string    `json:"sellerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewProductResponse maps a product model onto the wire shape.
func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		SellerID:  p.SellerID,
		CreatedAt: p.CreatedAt,
	}
}

// NewProductResponses maps a product slice onto the wire shape.
func NewProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
