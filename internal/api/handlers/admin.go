package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/order"
)

// UpdateStatusRequest is the body for POST /v1/admin/orders/:id/status
type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	TrackingCarrier string `json:"tracking_carrier"`
	TrackingNumber  string `json:"tracking_number"`
}

// HandleAdminListOrders handles GET /v1/admin/orders
func HandleAdminListOrders(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := parseOrderFilters(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// empty session ID lists across all sessions
		orders, err := svc.List(c.Request.Context(), "", filters)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
	}
}

// HandleAdminGetOrder handles GET /v1/admin/orders/:id
func HandleAdminGetOrder(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		o, err := svc.GetByID(c.Request.Context(), orderID, "")
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, o)
	}
}

// HandleAdminUpdateStatus handles POST /v1/admin/orders/:id/status
func HandleAdminUpdateStatus(svc *order.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		o, err := svc.UpdateStatus(c.Request.Context(), orderID,
			domain.OrderStatus(req.Status), req.TrackingCarrier, req.TrackingNumber)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, o)
	}
}
