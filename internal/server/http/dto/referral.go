package dto

import "github.com/mtkshopping/marketplace/internal/domain/model"

// ReferredUserResponse identifies one referred account.
type ReferredUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ReferralsResponse summarizes the caller's referral standing.
type ReferralsResponse struct {
	Total    int                    `json:"total"`
	Balance  float64                `json:"balance"`
	Referred []ReferredUserResponse `json:"referred"`
}

// BalanceResponse exposes accumulated commission balance.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// NewReferralsResponse maps a referral summary onto the wire shape.
func NewReferralsResponse(s *model.ReferralSummary) ReferralsResponse {
	referred := make([]ReferredUserResponse, 0, len(s.Referred))
	for _, u := range s.Referred {
		referred = append(referred, ReferredUserResponse{ID: u.ID, Email: u.Email})
	}
	return ReferralsResponse{Total: s.Total, Balance: s.Balance, Referred: referred}
}
