package common

import (
	"net/http"

	"github.com/cinefeel/cinefeel-backend/pkg/i18n"
	"github.com/cinefeel/cinefeel-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Context keys shared with the i18n middleware
const (
	LocaleKey = "locale"
	BundleKey = "i18n"
)

// ErrorBody error response payload
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
}

// MessageBody plain message payload
type MessageBody struct {
	Message string `json:"message"`
}

// SuccessBody {"success": true} payload
type SuccessBody struct {
	Success bool `json:"success"`
}

// Locale returns the request locale set by the i18n middleware
func Locale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(LocaleKey); ok {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.LocaleKo
}

// T translates key for the request locale
func T(c *gin.Context, key string, args ...interface{}) string {
	bundle := i18n.Default()
	if v, ok := c.Get(BundleKey); ok {
		if b, ok := v.(*i18n.Bundle); ok {
			bundle = b
		}
	}
	return bundle.T(Locale(c), key, args...)
}

// SuccessResponse returns a 200 JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// MessageResponse returns a localized message
func MessageResponse(c *gin.Context, status int, key string) {
	c.JSON(status, MessageBody{Message: T(c, key)})
}

// ErrorResponse returns an error JSON response. key is an i18n message key.
// 401 responses carry no error detail.
func ErrorResponse(c *gin.Context, status int, key string, err error) {
	body := ErrorBody{
		Message: T(c, key),
		Code:    getErrorCode(status),
	}
	if err != nil && status != http.StatusUnauthorized {
		body.Error = err.Error()
	}

	if status >= http.StatusInternalServerError {
		event := logger.GetLogger().Error().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status)
		if err != nil {
			event = event.Err(err)
		}
		event.Msg(key)
	}

	c.JSON(status, body)
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 401:
		return "UNAUTHORIZED"
	case 403:
		return "FORBIDDEN"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	case 502:
		return "BAD_GATEWAY"
	case 503:
		return "SERVICE_UNAVAILABLE"
	default:
		return "ERROR"
	}
}
