package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/catalog"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(svc *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{
			CategoryID:  queryInt64(c, "category_id"),
			SearchQuery: c.Query("q"),
			MinPrice:    queryInt64(c, "min_price"),
			MaxPrice:    queryInt64(c, "max_price"),
			InStockOnly: c.Query("in_stock") == "true",
			Sort:        catalog.SortOption(c.Query("sort")),
			Page:        int(queryInt64(c, "page")),
			Limit:       int(queryInt64(c, "limit")),
		}

		page, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, page)
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(svc *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		product, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// HandleListCategories handles GET /v1/categories
func HandleListCategories(svc *catalog.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.Categories(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

func queryInt64(c *gin.Context, key string) int64 {
	v, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
