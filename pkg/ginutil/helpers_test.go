package ginutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string, params gin.Params) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	return c
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 3, QueryInt(newContext("/?page=3", nil), "page", 1))
	assert.Equal(t, 1, QueryInt(newContext("/", nil), "page", 1))
	assert.Equal(t, 1, QueryInt(newContext("/?page=abc", nil), "page", 1))
}

func TestParamID64(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"550", 550, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParamID64(newContext("/", gin.Params{{Key: "id", Value: tt.value}}), "id")
		if tt.wantErr {
			assert.Error(t, err, tt.value)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParamUint64(t *testing.T) {
	got, err := ParamUint64(newContext("/", gin.Params{{Key: "id", Value: "42"}}), "id")
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), got)

	_, err = ParamUint64(newContext("/", gin.Params{{Key: "id", Value: "0"}}), "id")
	assert.ErrorIs(t, err, ErrNotPositive)

	_, err = ParamUint64(newContext("/", gin.Params{{Key: "id", Value: "-5"}}), "id")
	assert.Error(t, err)
}
