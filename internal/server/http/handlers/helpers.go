package handlers

import (
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/mtkshopping/marketplace/internal/pkg/auth"
	"github.com/mtkshopping/marketplace/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) pkgAuth.Identity {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return pkgAuth.Identity{}
	}
	identity, _ := val.(pkgAuth.Identity)
	return identity
}
