package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/server/http/dto"
)

// ReferralHandler exposes affiliate bookkeeping endpoints.
type ReferralHandler struct {
	facade ReferralFacade
}

// NewReferralHandler creates ReferralHandler instance.
func NewReferralHandler(facade ReferralFacade) *ReferralHandler {
	return &ReferralHandler{facade: facade}
}

// Referrals handles GET /api/me/referrals.
func (h *ReferralHandler) Referrals(c *gin.Context) {
	summary, err := h.facade.Referrals(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewReferralsResponse(summary))
}

// Balance handles GET /api/me/balance.
func (h *ReferralHandler) Balance(c *gin.Context) {
	balance, err := h.facade.Balance(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}
