package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/api/middleware"
	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/order"
)

// CancelOrderRequest is the body for POST /v1/orders/:id/cancel
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// HandleListOrders handles GET /v1/orders
func HandleListOrders(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		filters, err := parseOrderFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orders, err := svc.List(c.Request.Context(), sessionID, filters)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		o, err := svc.GetByID(c.Request.Context(), orderID, sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, o)
	}
}

// HandleCancelOrder handles POST /v1/orders/:id/cancel
func HandleCancelOrder(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		// body is optional; a missing reason is fine
		var req CancelOrderRequest
		_ = c.ShouldBindJSON(&req)

		o, err := svc.Cancel(c.Request.Context(), orderID, sessionID, req.Reason)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, o)
	}
}

func parseOrderFilters(c *gin.Context) (domain.OrderFilters, error) {
	filters := domain.OrderFilters{
		Status:      domain.OrderStatus(c.Query("status")),
		SearchQuery: c.Query("q"),
	}

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filters, err
		}
		filters.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filters, err
		}
		filters.To = &t
	}

	return filters, nil
}
