package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/storefront/internal/cart/domain"
	"github.com/emre/storefront/internal/cart/store"
	"github.com/emre/storefront/internal/catalog/provider"
)

type mockRepository struct {
	m     sync.Mutex
	lines []domain.Line
}

func (r *mockRepository) Load(context.Context) ([]domain.Line, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.lines, nil
}

func (r *mockRepository) Save(_ context.Context, lines []domain.Line) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.lines = lines
	return nil
}

// The handler registers Prometheus collectors, so it is built once for
// the whole test binary.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
	testStore  *store.Store
)

func setup() (*mux.Router, *store.Store) {
	setupOnce.Do(func() {
		testStore = store.New(&mockRepository{})
		handler := NewCartHandler(testStore, provider.NewStaticProvider(0, 0))
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter, testStore
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestAddItem_Success(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	rec, resp := doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	require.Len(t, cartStore.Items(), 1)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	rec, resp := doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "999"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
	assert.Empty(t, cartStore.Items())
}

func TestAddItem_InvalidBody(t *testing.T) {
	router, _ := setup()

	req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartFlow(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	// two of product 1, one of product 3
	doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "1"})
	doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "1"})
	doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "3"})

	rec, resp := doRequest(t, router, "GET", "/api/cart", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["total_items"])
	assert.Len(t, data["items"], 2)

	// quantity zero removes the line
	rec, _ = doRequest(t, router, "PUT", "/api/cart/items/1", map[string]int{"quantity": 0})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cartStore.Items(), 1)
	assert.Equal(t, "3", cartStore.Items()[0].Product.ID)

	rec, _ = doRequest(t, router, "DELETE", "/api/cart/items/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, cartStore.Items())
}

func TestClearCart(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "2"})

	rec, resp := doRequest(t, router, "DELETE", "/api/cart", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, cartStore.Items())
}

func TestGetTotals_EmptyCart(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	rec, resp := doRequest(t, router, "GET", "/api/cart/totals", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["total_items"])
	assert.Equal(t, float64(0), data["total_price"])
}

func TestCheckout_EmptyCart(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	rec, resp := doRequest(t, router, "POST", "/api/cart/checkout", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestCheckout_ClearsCart(t *testing.T) {
	router, cartStore := setup()
	cartStore.ClearCart(context.Background())

	doRequest(t, router, "POST", "/api/cart/items", map[string]string{"product_id": "5"})

	rec, resp := doRequest(t, router, "POST", "/api/cart/checkout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Empty(t, cartStore.Items())
}
