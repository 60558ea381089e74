package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/mtkshopping/marketplace/internal/domain/errors"
	"github.com/mtkshopping/marketplace/internal/server/http/dto"
)

// PurchaseHandler processes buy requests and purchase history.
type PurchaseHandler struct {
	facade PurchaseFacade
}

// NewPurchaseHandler creates PurchaseHandler instance.
func NewPurchaseHandler(facade PurchaseFacade) *PurchaseHandler {
	return &PurchaseHandler{facade: facade}
}

// Buy handles POST /api/buy. Customers only.
func (h *PurchaseHandler) Buy(c *gin.Context) {
	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	purchase, err := h.facade.Buy(c.Request.Context(), CurrentIdentity(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "customers only"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.BuyResponse{
		Message:  "purchased",
		Purchase: dto.NewPurchaseResponse(purchase),
	})
}

// History handles GET /api/me/purchases.
func (h *PurchaseHandler) History(c *gin.Context) {
	purchases, err := h.facade.Purchases(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewPurchaseResponses(purchases))
}
