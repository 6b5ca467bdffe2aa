package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestI18n_SetsLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(I18n(nil))
	r.GET("/missing", func(c *gin.Context) {
		common.ErrorResponse(c, http.StatusNotFound, "bookmark.not_found", nil)
	})

	tests := []struct {
		header  string
		locale  string
		message string
	}{
		{"en-US,en;q=0.9", "en", "Bookmark does not exist."},
		{"ko-KR", "ko", "북마크가 존재하지 않습니다."},
		{"", "ko", "북마크가 존재하지 않습니다."},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set("Accept-Language", tt.header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, tt.locale, w.Header().Get("Content-Language"))
		assert.Contains(t, w.Body.String(), tt.message)
	}
}

func TestI18n_CustomBundle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	bundle := i18n.NewBundle(i18n.LocaleKo)
	bundle.LoadMessages(i18n.LocaleKo, map[string]string{"auth.required": "로그인 해주세요"})

	r := gin.New()
	r.Use(I18n(bundle), SessionAuth(newTokens(t, 0)), RequireAuth())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "로그인 해주세요")
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 8)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/api/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/movies/popular", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, apiCSP, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/popular", nil))
	assert.Empty(t, w.Header().Get("Cache-Control"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/api/bookmarks/:tmdbId", normalizePath("/api/bookmarks/:tmdbId"))
	assert.Equal(t, "unmatched", normalizePath(""))
}
