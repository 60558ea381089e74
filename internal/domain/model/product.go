package model

import "time"

// Product is an item listed for sale by a seller.
type Product struct {
	ID        string
	Name      string
	Price     float64
	SellerID  string
	CreatedAt time.Time
}
