package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/attendrop/minter/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	// Claim endpoints. The direct claim and coupon flows carry their own
	// authorization (signatures, coupon secrets), so they are open.
	actions := router.Group("/actions")
	{
		actions.POST("/claim", handler.Claim)
		actions.GET("/claim-qr", handler.GetCoupon)
		actions.POST("/claim-qr", handler.RedeemCoupon)

		// Coupon provisioning (requires authentication)
		actions.POST("/claim-qr/batch", middleware.Auth(authCfg), handler.ProvisionCoupons)

		// Transaction replacement (requires authentication)
		actions.POST("/bump", middleware.Auth(authCfg), handler.Bump)

		// Batch mints (requires authentication)
		actions.POST("/mintEventToManyUsers", middleware.Auth(authCfg), handler.MintEventToManyUsers)
		actions.POST("/mintUserToManyEvents", middleware.Auth(authCfg), handler.MintUserToManyEvents)

		// Ledger reads (public)
		actions.GET("/scan/:address", handler.Scan)
		actions.GET("/ens_resolve", handler.ENSResolve)
		actions.GET("/ens_lookup/:address", handler.ENSLookup)
	}

	// Token endpoints (public read access)
	router.GET("/token/:tokenId", handler.GetToken)
	router.GET("/metadata/:eventId/:tokenId", handler.TokenMetadata)

	// Burn endpoint (requires authentication)
	router.POST("/burn/:tokenId", middleware.Auth(authCfg), handler.Burn)

	// Event endpoints (reads public, writes authenticated)
	events := router.Group("/events")
	{
		events.GET("", handler.ListEvents)
		events.GET("/:fancyId", handler.GetEvent)
		events.POST("", middleware.Auth(authCfg), handler.CreateEvent)
		events.PUT("/:fancyId", middleware.Auth(authCfg), handler.UpdateEvent)
	}

	// Setting endpoints (requires authentication)
	settings := router.Group("/settings", middleware.Auth(authCfg))
	{
		settings.GET("", handler.ListSettings)
		settings.GET("/:name", handler.GetSetting)
		settings.PUT("/:name", handler.UpdateSetting)
	}

	// Transaction audit trail (requires authentication)
	router.GET("/transactions", middleware.Auth(authCfg), handler.ListTransactions)

	// Signer endpoints (pool state public, overrides authenticated)
	router.GET("/signers", handler.ListSigners)
	router.PUT("/signers/:address", middleware.Auth(authCfg), handler.UpdateSigner)
}
