package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rifnaz/WLL-Product-App/cart"
	"github.com/Rifnaz/WLL-Product-App/catalog"
	"github.com/Rifnaz/WLL-Product-App/models"
)

func setupCartRouter(t *testing.T, upstreamURL string) (*gin.Engine, *cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.CartLine{}))

	store := cart.NewStore(db)
	client := catalog.NewClient(upstreamURL, 2*time.Second, zap.NewNop())
	agg := cart.NewAggregator(catalog.NewQuerier(client), store)

	r := gin.New()
	r.POST("/api/Home/AddToCart", AddToCart(store))
	r.DELETE("/api/Home/DeleteFromCart/:id", DeleteFromCart(store))
	r.GET("/api/Home/Cart", GetCart(agg, zap.NewNop()))
	return r, store
}

func newCartUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":7,"title":"iPhone 15","category":"smartphones","price":999.99}]}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartResponses(t *testing.T) {
	r, _ := setupCartRouter(t, newCartUpstream(t).URL)

	t.Run("first add answers Added", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/Home/AddToCart", `{"productId":7,"quantity":2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Added."`, w.Body.String())
	})

	t.Run("second add answers Updated", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/Home/AddToCart", `{"productId":7,"quantity":3}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Updated."`, w.Body.String())
	})

	t.Run("invalid product id is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/Home/AddToCart", `{"productId":0,"quantity":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid Product Id.")
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/Home/AddToCart", `{"productId":5,"quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "At least 1 quantity")
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/Home/AddToCart", `{"productId":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteFromCartResponses(t *testing.T) {
	r, store := setupCartRouter(t, newCartUpstream(t).URL)

	_, err := store.Add(7, 1)
	require.NoError(t, err)
	lines, err := store.ListAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)

	t.Run("unknown id answers 400", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/Home/DeleteFromCart/9999", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Item Not Found.")
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/Home/DeleteFromCart/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("existing line answers Removed", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/Home/DeleteFromCart/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"Removed."`, w.Body.String())
	})
}

func TestGetCartView(t *testing.T) {
	upstream := newCartUpstream(t)
	r, store := setupCartRouter(t, upstream.URL)

	_, err := store.Add(7, 2)
	require.NoError(t, err)
	_, err = store.Add(99, 1) // not in the upstream snapshot
	require.NoError(t, err)

	t.Run("joined view carries product data", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/Home/Cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		var view []map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Len(t, view, 1)
		assert.JSONEq(t, "7", string(view[0]["productId"]))
		assert.JSONEq(t, "2", string(view[0]["quantity"]))
		assert.Contains(t, string(view[0]["product"]), "iPhone 15")
	})

	t.Run("upstream failure answers 400, not an empty cart", func(t *testing.T) {
		upstream.Close()
		w := doJSON(r, http.MethodGet, "/api/Home/Cart", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Something went wrong.")
	})
}
