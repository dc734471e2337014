package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/api/handlers"
	"github.com/hanashop/storefront/internal/api/middleware"
	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/catalog"
	"github.com/hanashop/storefront/internal/checkout"
	"github.com/hanashop/storefront/internal/config"
	"github.com/hanashop/storefront/internal/order"
)

// Services bundles the application services the router wires handlers to.
type Services struct {
	Catalog  *catalog.Service
	Cart     *cart.Store
	Checkout *checkout.Manager
	Orders   *order.Service
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog routes (no session required)
		v1.GET("/products", handlers.HandleListProducts(svcs.Catalog, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(svcs.Catalog, logger))
		v1.GET("/categories", handlers.HandleListCategories(svcs.Catalog, logger))

		// Shopper routes (session scoped)
		shopper := v1.Group("")
		shopper.Use(middleware.SessionMiddleware())
		{
			shopper.GET("/cart", handlers.HandleGetCart(svcs.Cart, logger))
			shopper.POST("/cart/items", handlers.HandleAddItem(svcs.Cart, logger))
			shopper.PATCH("/cart/items/:id", handlers.HandleUpdateQuantity(svcs.Cart, logger))
			shopper.DELETE("/cart/items/:id", handlers.HandleRemoveItem(svcs.Cart, logger))
			shopper.POST("/cart/items/:id/toggle", handlers.HandleToggleSelection(svcs.Cart, logger))
			shopper.POST("/cart/select-all", handlers.HandleSelectAll(svcs.Cart, logger))
			shopper.DELETE("/cart/selected", handlers.HandleRemoveSelected(svcs.Cart, logger))
			shopper.DELETE("/cart", handlers.HandleClearCart(svcs.Cart, logger))

			shopper.GET("/checkout", handlers.HandleGetCheckout(svcs.Checkout, logger))
			shopper.POST("/checkout/shipping", handlers.HandleSubmitShipping(svcs.Checkout, logger))
			shopper.POST("/checkout/payment", handlers.HandleSubmitPayment(svcs.Checkout, logger))
			shopper.POST("/checkout/back", handlers.HandleCheckoutBack(svcs.Checkout, logger))
			shopper.POST("/checkout/submit", handlers.HandleSubmitOrder(svcs.Checkout, logger))
			shopper.DELETE("/checkout", handlers.HandleResetCheckout(svcs.Checkout, logger))

			shopper.GET("/orders", handlers.HandleListOrders(svcs.Orders, logger))
			shopper.GET("/orders/:id", handlers.HandleGetOrder(svcs.Orders, logger))
			shopper.POST("/orders/:id/cancel", handlers.HandleCancelOrder(svcs.Orders, logger))
		}

		// Admin routes (API key)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AdminAuthMiddleware(cfg.Admin.APIKeyHash, logger))
		{
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(svcs.Orders, logger))
			adminRoutes.GET("/orders/:id", handlers.HandleAdminGetOrder(svcs.Orders, logger))
			adminRoutes.POST("/orders/:id/status", handlers.HandleAdminUpdateStatus(svcs.Orders, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
