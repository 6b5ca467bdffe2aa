package ginutil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrNotPositive path param parsed but is zero or negative
var ErrNotPositive = errors.New("must be a positive integer")

// QueryInt extracts an integer from query parameters with default value
func QueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// ParamID64 extracts a positive int64 id (e.g. a TMDB id) from path parameters
func ParamID64(c *gin.Context, key string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, ErrNotPositive
	}
	return value, nil
}

// ParamUint64 extracts a positive row id from path parameters
func ParamUint64(c *gin.Context, key string) (uint64, error) {
	value, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return 0, ErrNotPositive
	}
	return value, nil
}
