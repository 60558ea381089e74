package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mtkshopping/marketplace/internal/server/http/handlers"
	"github.com/mtkshopping/marketplace/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	purchaseHandler := handlers.NewPurchaseHandler(facade)
	referralHandler := handlers.NewReferralHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Marketplace API")
	})

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/products", productHandler.List)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/products", productHandler.Create)
	authed.POST("/buy", purchaseHandler.Buy)

	me := authed.Group("/me")
	me.GET("/referrals", referralHandler.Referrals)
	me.GET("/balance", referralHandler.Balance)
	me.GET("/purchases", purchaseHandler.History)

	return engine
}
