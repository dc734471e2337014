package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/api/middleware"
	"github.com/hanashop/storefront/internal/checkout"
	"github.com/hanashop/storefront/internal/domain"
)

// HandleGetCheckout handles GET /v1/checkout
func HandleGetCheckout(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		sess, err := mgr.Get(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// HandleSubmitShipping handles POST /v1/checkout/shipping
func HandleSubmitShipping(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		var info domain.ShippingInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		sess, err := mgr.SubmitShipping(c.Request.Context(), sessionID, info)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// HandleSubmitPayment handles POST /v1/checkout/payment
func HandleSubmitPayment(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		var info domain.PaymentInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		sess, err := mgr.SubmitPayment(c.Request.Context(), sessionID, info)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// HandleCheckoutBack handles POST /v1/checkout/back
func HandleCheckoutBack(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		sess, err := mgr.GoBack(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// HandleSubmitOrder handles POST /v1/checkout/submit
func HandleSubmitOrder(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		order, err := mgr.SubmitOrder(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// HandleResetCheckout handles DELETE /v1/checkout
func HandleResetCheckout(mgr *checkout.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		if err := mgr.Reset(c.Request.Context(), sessionID); err != nil {
			respondError(c, logger, err)
			return
		}

		sess, err := mgr.Get(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}
