package middleware

import (
	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// I18n middleware detects the client's preferred language from Accept-Language header
// and stores it, together with the message bundle, in the gin context.
func I18n(bundle *i18n.Bundle) gin.HandlerFunc {
	if bundle == nil {
		bundle = i18n.Default()
	}
	return func(c *gin.Context) {
		locale := i18n.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set(common.LocaleKey, locale)
		c.Set(common.BundleKey, bundle)
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}
