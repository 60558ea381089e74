package dto

// RegisterRequest describes sign-up payload. Role defaults to customer
// and Ref carries an optional referral code.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Ref      string `json:"ref"`
}

// RegisterResponse confirms account creation and exposes the personal
// referral code of the new user.
type RegisterResponse struct {
	Message string `json:"message"`
	RefCode string `json:"refCode"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a session token.
type TokenResponse struct {
	Token string `json:"token"`
}
