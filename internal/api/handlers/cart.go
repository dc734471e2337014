package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/api/middleware"
	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/domain"
)

// CartResponse carries the cart lines with totals derived from them.
type CartResponse struct {
	Items                 []domain.CartItem `json:"items"`
	Totals                domain.CartTotals `json:"totals"`
	FreeShippingRemaining int64             `json:"free_shipping_remaining"`
}

func cartResponse(items []domain.CartItem, totals domain.CartTotals) CartResponse {
	return CartResponse{
		Items:                 items,
		Totals:                totals,
		FreeShippingRemaining: cart.FreeShippingRemaining(totals.Subtotal),
	}
}

// AddItemRequest is the body for POST /v1/cart/items
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// UpdateQuantityRequest is the body for PATCH /v1/cart/items/:id
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectAllRequest is the body for POST /v1/cart/select-all
type SelectAllRequest struct {
	Selected bool `json:"selected"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		items, totals, err := store.Totals(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, totals))
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		items, err := store.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleUpdateQuantity handles PATCH /v1/cart/items/:id
func HandleUpdateQuantity(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		items, err := store.UpdateQuantity(c.Request.Context(), sessionID, itemID, req.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id
func HandleRemoveItem(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
			return
		}

		items, err := store.RemoveItem(c.Request.Context(), sessionID, itemID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleToggleSelection handles POST /v1/cart/items/:id/toggle
func HandleToggleSelection(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
			return
		}

		items, err := store.ToggleSelection(c.Request.Context(), sessionID, itemID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleSelectAll handles POST /v1/cart/select-all
func HandleSelectAll(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		var req SelectAllRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		items, err := store.SetAllSelected(c.Request.Context(), sessionID, req.Selected)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleRemoveSelected handles DELETE /v1/cart/selected
func HandleRemoveSelected(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		items, err := store.RemoveSelected(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(items, cart.ComputeTotals(items)))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(store *cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		if err := store.Clear(c.Request.Context(), sessionID); err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse([]domain.CartItem{}, cart.ComputeTotals(nil)))
	}
}
