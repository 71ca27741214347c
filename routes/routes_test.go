package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"k2demo/handlers"
	"k2demo/services/catalog"
	"k2demo/services/checkout"
	"k2demo/services/demo"
	"k2demo/services/demolog"
	"k2demo/services/k2"
)

func testEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.MustNew(catalog.DefaultProducts)
	hb := handlers.NewHandlerBundle(
		cat,
		k2.NewEngine(cat, k2.DefaultScenarios),
		k2.NewDebugStore(k2.DefaultDebugCapacity),
		checkout.NewCheckoutService(checkout.NewSessionStore(), cat),
		demolog.NewBus(),
		demo.NewSettings(demo.ModeBaseline, false),
	)

	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func TestHealthRoute(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestUCPWellKnownRoute(t *testing.T) {
	r := testEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/.well-known/ucp", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "com.jarir.shopping.discovery")
}

func TestCORSPreflight(t *testing.T) {
	r := testEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products/search", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", handlers.HeaderK2Mode)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
