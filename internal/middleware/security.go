package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const apiCSP = "default-src 'none'; frame-ancestors 'none'"

// SecurityHeaders sets response headers for a JSON API that authenticates by cookie.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// swagger UI는 인라인 스크립트를 사용
		if !strings.HasPrefix(path, "/swagger/") {
			c.Header("Content-Security-Policy", apiCSP)
		}

		// 쿠키로 식별된 사용자별 응답은 공유 캐시에 남기지 않음
		if strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/api/movies/") {
			c.Header("Cache-Control", "no-store")
		}

		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
