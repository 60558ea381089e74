package model

// Commission is a pending credit for the buyer's direct referrer,
// computed at purchase time and applied together with the purchase record.
type Commission struct {
	ReferrerID string
	Amount     float64
}

// ReferredUser is a minimal view of an account recruited via referral code.
type ReferredUser struct {
	ID    string
	Email string
}

// ReferralSummary aggregates a user's affiliate standing.
type ReferralSummary struct {
	Total    int
	Balance  float64
	Referred []ReferredUser
}
