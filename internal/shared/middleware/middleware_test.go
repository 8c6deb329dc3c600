package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares...)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecovery_ReturnsGenericError(t *testing.T) {
	r := newTestEngine(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("secret stack detail")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Internal server error"}, body)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestRequestID(t *testing.T) {
	r := newTestEngine(RequestID())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates one", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("reuses incoming header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	t.Run("preflight", func(t *testing.T) {
		r := newTestEngine(CORS(DefaultCorsConfig()))
		r.PUT("/blogs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/blogs/x", nil)
		req.Header.Set("Origin", "http://localhost:5500")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
	})

	t.Run("restricted origins", func(t *testing.T) {
		cfg := DefaultCorsConfig()
		cfg.AllowedOrigins = []string{"http://allowed.test"}
		r := newTestEngine(CORS(cfg))
		r.GET("/blogs", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
		req.Header.Set("Origin", "http://allowed.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "http://allowed.test", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/blogs", nil)
		req.Header.Set("Origin", "http://evil.test")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestStaticFilesAndRouteNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>blogs</h1>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "index.js"), []byte("console.log(1)"), 0o644))

	r := newTestEngine()
	r.NoRoute(StaticFiles(dir), RouteNotFound())

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"root serves index", http.MethodGet, "/", http.StatusOK, "<h1>blogs</h1>"},
		{"nested asset", http.MethodGet, "/js/index.js", http.StatusOK, "console.log(1)"},
		{"missing file", http.MethodGet, "/nope.css", http.StatusNotFound, "Route not found"},
		{"directory without index", http.MethodGet, "/js/", http.StatusNotFound, "Route not found"},
		{"head is served", http.MethodHead, "/js/index.js", http.StatusOK, ""},
		{"traversal stays inside", http.MethodGet, "/../../etc/passwd", http.StatusNotFound, "Route not found"},
		{"post is not served", http.MethodPost, "/", http.StatusNotFound, "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStaticFiles_Disabled(t *testing.T) {
	r := newTestEngine()
	r.NoRoute(StaticFiles(""), RouteNotFound())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Route not found"}, decode(t, w))
}
