package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/catalog"
	"github.com/hanashop/storefront/internal/checkout"
	"github.com/hanashop/storefront/internal/config"
	"github.com/hanashop/storefront/internal/order"
	"github.com/hanashop/storefront/internal/repository/memory"
	"github.com/hanashop/storefront/internal/storage"
)

const testAdminKey = "test-admin-key"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: "test",
		Admin:       config.AdminConfig{APIKeyHash: string(hash)},
	}

	products := memory.NewProductRepository()
	orders := memory.NewOrderRepository()
	store := storage.NewMemoryStore()

	cartStore := cart.NewStore(store, products, nil)
	orderSvc := order.NewService(orders, nil)

	return NewRouter(cfg, &Services{
		Catalog:  catalog.NewService(products, nil),
		Cart:     cartStore,
		Checkout: checkout.NewManager(store, cartStore, orderSvc, nil),
		Orders:   orderSvc,
	}, zap.NewNop())
}

func doJSON(router *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("success_list_defaults_to_twelve_per_page", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/products", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		var page catalog.Page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page.Items, 12)
		assert.Equal(t, 12, page.TotalCount)
	})

	t.Run("success_filtered_by_category", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/products?category_id=2&sort=price-low", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		var page catalog.Page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.NotEmpty(t, page.Items)
		for _, p := range page.Items {
			assert.Equal(t, int64(2), p.CategoryID)
		}
	})

	t.Run("success_get_by_id", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/products/1", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fail_unknown_product", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/products/999", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("fail_non_numeric_id", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/products/abc", "", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	t.Run("success_add_and_read_back", func(t *testing.T) {
		router := newTestRouter(t)

		w := doJSON(router, http.MethodPost, "/v1/cart/items", "s1", `{"product_id":2,"quantity":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/v1/cart", "s1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items  []json.RawMessage `json:"items"`
			Totals struct {
				Subtotal   int64 `json:"subtotal"`
				TotalPrice int64 `json:"total_price"`
			} `json:"totals"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, int64(98000), resp.Totals.Subtotal)
		assert.Equal(t, int64(98000), resp.Totals.TotalPrice)
	})

	t.Run("fail_add_out_of_stock_product", func(t *testing.T) {
		router := newTestRouter(t)

		w := doJSON(router, http.MethodPost, "/v1/cart/items", "s1", `{"product_id":12,"quantity":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success_sessions_have_separate_carts", func(t *testing.T) {
		router := newTestRouter(t)

		w := doJSON(router, http.MethodPost, "/v1/cart/items", "s1", `{"product_id":2,"quantity":1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/v1/cart", "s2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Items []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
	})

	t.Run("success_cookie_issued_when_no_session", func(t *testing.T) {
		router := newTestRouter(t)

		w := doJSON(router, http.MethodGet, "/v1/cart", "", "")

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "sid", cookies[0].Name)
	})
}

func TestCheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	shipping := `{
		"recipient_name": "Kim Minji",
		"recipient_phone": "010-1234-5678",
		"zip_code": "06236",
		"address": "123 Teheran-ro, Gangnam-gu, Seoul",
		"address_detail": "Apt 403"
	}`
	payment := `{
		"method": "CARD",
		"card_number": "4111-1111-1111-1111",
		"card_issuer": "Shinhan Card"
	}`

	w := doJSON(router, http.MethodPost, "/v1/cart/items", "s1", `{"product_id":2,"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	// submitting out of order is rejected
	w = doJSON(router, http.MethodPost, "/v1/checkout/submit", "s1", "")
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodPost, "/v1/checkout/shipping", "s1", shipping)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/v1/checkout/payment", "s1", payment)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/v1/checkout/submit", "s1", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		ID          string `json:"id"`
		OrderNumber string `json:"order_number"`
		TotalAmount int64  `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.True(t, strings.HasPrefix(placed.OrderNumber, "ORD-"))
	assert.Equal(t, int64(98000), placed.TotalAmount)

	// cart was cleared by the successful submit
	w = doJSON(router, http.MethodGet, "/v1/cart", "s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cartResp struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Items)

	// the order shows up in the session's history
	w = doJSON(router, http.MethodGet, "/v1/orders", "s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Count)

	// but not in another session's
	w = doJSON(router, http.MethodGet, "/v1/orders/"+placed.ID, "s2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/v1/checkout/shipping", "s1", `{
		"recipient_name": "Kim Minji",
		"recipient_phone": "123-4567",
		"zip_code": "06236",
		"address": "123 Teheran-ro, Gangnam-gu, Seoul",
		"address_detail": "Apt 403"
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "recipient_phone", resp.Fields[0].Field)
}

func TestAdminEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("fail_without_key", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/v1/admin/orders", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("fail_with_wrong_key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer wrong-key")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success_with_key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer "+testAdminKey)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
