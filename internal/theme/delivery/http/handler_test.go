package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/storefront/internal/theme/domain"
	"github.com/emre/storefront/internal/theme/store"
)

type mockRepository struct {
	m     sync.Mutex
	token string
}

func (r *mockRepository) Load(context.Context) (string, error) {
	r.m.Lock()
	defer r.m.Unlock()
	return r.token, nil
}

func (r *mockRepository) Save(_ context.Context, token string) error {
	r.m.Lock()
	defer r.m.Unlock()
	r.token = token
	return nil
}

// The handler registers Prometheus collectors, so it is built once for
// the whole test binary.
var (
	setupOnce  sync.Once
	testRouter *mux.Router
)

func setup() *mux.Router {
	setupOnce.Do(func() {
		handler := NewThemeHandler(store.New(&mockRepository{}))
		testRouter = mux.NewRouter()
		handler.RegisterRoutes(testRouter)
	})
	return testRouter
}

func doRequest(t *testing.T, method, path string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	setup().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func themeColors(t *testing.T, resp Response) (bool, map[string]interface{}) {
	t.Helper()

	data := resp.Data.(map[string]interface{})
	theme := data["theme"].(map[string]interface{})
	return data["is_dark"].(bool), theme["colors"].(map[string]interface{})
}

func TestThemeEndpoints(t *testing.T) {
	t.Run("default is light", func(t *testing.T) {
		rec, resp := doRequest(t, "GET", "/api/theme")

		assert.Equal(t, http.StatusOK, rec.Code)
		isDark, colors := themeColors(t, resp)
		assert.False(t, isDark)
		assert.Equal(t, domain.Light.Colors.Background, colors["background"])
	})

	t.Run("toggle flips to dark", func(t *testing.T) {
		rec, resp := doRequest(t, "POST", "/api/theme/toggle")

		assert.Equal(t, http.StatusOK, rec.Code)
		isDark, colors := themeColors(t, resp)
		assert.True(t, isDark)
		assert.Equal(t, domain.Dark.Colors.Background, colors["background"])
		assert.Equal(t, domain.Dark.Colors.Primary, colors["primary"])
	})

	t.Run("toggle again restores light palette", func(t *testing.T) {
		rec, resp := doRequest(t, "POST", "/api/theme/toggle")

		assert.Equal(t, http.StatusOK, rec.Code)
		isDark, colors := themeColors(t, resp)
		assert.False(t, isDark)
		assert.Equal(t, domain.Light.Colors.Background, colors["background"])
		assert.Equal(t, domain.Light.Colors.Primary, colors["primary"])
	})
}
