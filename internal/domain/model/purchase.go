package model

import "time"

// Purchase records a completed buy operation. Purchases are append-only
// and never edited or deleted.
type Purchase struct {
	ID        string
	ProductID string
	BuyerID   string
	CreatedAt time.Time
}
