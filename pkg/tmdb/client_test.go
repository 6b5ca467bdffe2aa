package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestPopular(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "v3-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "ko-KR", r.URL.Query().Get("language"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":2,"total_pages":10,"total_results":200,
			"results":[{"id":550,"title":"파이트 클럽","poster_path":"/p.jpg","vote_average":8.4,"genre_ids":[18]}]}`))
	})

	c := NewClient(Config{APIKey: "v3-key", BaseURL: srv.URL + "/"})
	page, err := c.Popular(context.Background(), 2, "")

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 200, page.TotalResults)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(550), page.Results[0].ID)
	assert.Equal(t, "파이트 클럽", page.Results[0].Title)
	assert.Equal(t, []int{18}, page.Results[0].GenreIDs)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "fight club", r.URL.Query().Get("query"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		assert.Equal(t, "1", r.URL.Query().Get("page"), "page is clamped to 1")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	})

	c := NewClient(Config{APIKey: "v3-key", BaseURL: srv.URL})
	page, err := c.Search(context.Background(), "fight club", 0, "en-US")

	require.NoError(t, err)
	assert.Empty(t, page.Results)
}

func TestMovie_BearerToken(t *testing.T) {
	token := "eyJhbGciOiJIUzI1NiJ9.eyJhdWQiOiJ4In0.sig"
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":550,"title":"Fight Club","runtime":139,"genres":[{"id":18,"name":"Drama"}]}`))
	})

	c := NewClient(Config{APIKey: token, BaseURL: srv.URL, Language: "en-US"})
	movie, err := c.Movie(context.Background(), 550, "")

	require.NoError(t, err)
	assert.Equal(t, 139, movie.Runtime)
	assert.Equal(t, []Genre{{ID: 18, Name: "Drama"}}, movie.Genres)
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/movie/404" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"not found"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"status_code":7,"status_message":"Invalid API key"}`))
	})
	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL})

	_, err := c.Movie(context.Background(), 404, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Popular(context.Background(), 1, "")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Invalid API key", statusErr.Message)
}

func TestNotConfigured(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})

	assert.False(t, c.Enabled())
	assert.Equal(t, "ko-KR", c.Language())
	_, err := c.Popular(context.Background(), 1, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTimeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := c.Popular(context.Background(), 1, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{42, 42},
		{MaxPage, MaxPage},
		{MaxPage + 1, MaxPage},
		{1 << 30, MaxPage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePage(tt.page), "page %d", tt.page)
	}
}
