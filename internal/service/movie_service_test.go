package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/pkg/cache"
	"github.com/cinefeel/cinefeel-backend/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock MovieCatalog ---

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Enabled() bool    { return m.Called().Bool(0) }
func (m *mockCatalog) Language() string { return m.Called().String(0) }

func (m *mockCatalog) Popular(ctx context.Context, page int, language string) (*tmdb.Page, error) {
	args := m.Called(ctx, page, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}

func (m *mockCatalog) Search(ctx context.Context, query string, page int, language string) (*tmdb.Page, error) {
	args := m.Called(ctx, query, page, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}

func (m *mockCatalog) Movie(ctx context.Context, id int64, language string) (*tmdb.MovieDetail, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MovieDetail), args.Error(1)
}

// --- In-memory cache ---

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *memCache) IsAvailable() bool            { return true }
func (c *memCache) Ping(_ context.Context) error { return nil }

// --- Tests ---

func TestMovieDetail_CachesResponse(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	mem := newMemCache()
	svc := NewMovieService(catalog, mem)

	catalog.On("Enabled").Return(true)
	catalog.On("Language").Return("ko-KR")
	catalog.On("Movie", ctx, int64(550), "ko-KR").Return(&tmdb.MovieDetail{ID: 550, Title: "파이트 클럽"}, nil).Once()

	first, err := svc.Detail(ctx, 550, "")
	require.NoError(t, err)
	second, err := svc.Detail(ctx, 550, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, cache.TTLMovie, mem.ttls[cache.MovieKey(550, "ko-KR")])
	catalog.AssertNumberOfCalls(t, "Movie", 1)
}

func TestMoviePopular_LanguageIsPartOfKey(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	mem := newMemCache()
	svc := NewMovieService(catalog, mem)

	catalog.On("Enabled").Return(true)
	catalog.On("Popular", ctx, 1, "en-US").Return(&tmdb.Page{Page: 1}, nil).Once()
	catalog.On("Popular", ctx, 1, "ja-JP").Return(&tmdb.Page{Page: 1}, nil).Once()

	_, err := svc.Popular(ctx, 1, "en-US")
	require.NoError(t, err)
	_, err = svc.Popular(ctx, 1, "ja-JP")
	require.NoError(t, err)
	_, err = svc.Popular(ctx, 1, "en-US")
	require.NoError(t, err)

	catalog.AssertNumberOfCalls(t, "Popular", 2)
	assert.Equal(t, cache.TTLPopular, mem.ttls[cache.PopularKey(1, "en-US")])
}

func TestMoviePages_ClampedBeforeCaching(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	mem := newMemCache()
	svc := NewMovieService(catalog, mem)

	catalog.On("Enabled").Return(true)
	catalog.On("Popular", ctx, tmdb.MaxPage, "en-US").Return(&tmdb.Page{Page: tmdb.MaxPage}, nil).Once()
	catalog.On("Search", ctx, "alien", 1, "en-US").Return(&tmdb.Page{Page: 1}, nil).Once()

	for _, page := range []int{tmdb.MaxPage, tmdb.MaxPage + 1, 1 << 30} {
		_, err := svc.Popular(ctx, page, "en-US")
		require.NoError(t, err)
	}
	for _, page := range []int{0, -1, 1} {
		_, err := svc.Search(ctx, "alien", page, "en-US")
		require.NoError(t, err)
	}

	catalog.AssertNumberOfCalls(t, "Popular", 1)
	catalog.AssertNumberOfCalls(t, "Search", 1)
	assert.Len(t, mem.data, 2)
	assert.Contains(t, mem.data, cache.PopularKey(tmdb.MaxPage, "en-US"))
	assert.Contains(t, mem.data, cache.SearchKey("alien", 1, "en-US"))
}

func TestMovieSearch_RequiresQuery(t *testing.T) {
	catalog := new(mockCatalog)
	svc := NewMovieService(catalog, newMemCache())

	_, err := svc.Search(context.Background(), "   ", 1, "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMovieService_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	catalog := new(mockCatalog)
	svc := NewMovieService(catalog, cache.NewService(nil))

	catalog.On("Enabled").Return(true)
	catalog.On("Language").Return("ko-KR")
	catalog.On("Movie", ctx, int64(1), "ko-KR").Return(nil, tmdb.ErrNotFound)
	catalog.On("Movie", ctx, int64(2), "ko-KR").Return(nil, tmdb.ErrNotConfigured)
	catalog.On("Movie", ctx, int64(3), "ko-KR").Return(nil, &tmdb.StatusError{StatusCode: 500})
	catalog.On("Search", ctx, "x", 1, "ko-KR").Return(nil, errors.New("dial tcp: refused"))

	_, err := svc.Detail(ctx, 1, "")
	assert.ErrorIs(t, err, common.ErrMovieNotFound)
	_, err = svc.Detail(ctx, 2, "")
	assert.ErrorIs(t, err, common.ErrCatalogUnavailable)
	_, err = svc.Detail(ctx, 3, "")
	assert.ErrorIs(t, err, common.ErrCatalogUpstream)
	_, err = svc.Search(ctx, "x", 1, "")
	assert.ErrorIs(t, err, common.ErrCatalogUpstream)

	_, err = svc.Detail(ctx, 0, "")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
