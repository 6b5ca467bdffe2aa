package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/middleware"
	"github.com/cinefeel/cinefeel-backend/internal/service"
	"github.com/cinefeel/cinefeel-backend/pkg/jwt"
	"github.com/cinefeel/cinefeel-backend/pkg/tmdb"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ========================================
// Mock services
// ========================================

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*service.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID uint64) (*domain.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserResponse), args.Error(1)
}

type mockBookmarkService struct{ mock.Mock }

func (m *mockBookmarkService) Create(ctx context.Context, userID uint64, req *domain.CreateBookmarkRequest) (*domain.Bookmark, bool, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Bookmark), args.Bool(1), args.Error(2)
}

func (m *mockBookmarkService) List(ctx context.Context, userID uint64) ([]*domain.BookmarkResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookmarkResponse), args.Error(1)
}

func (m *mockBookmarkService) Get(ctx context.Context, userID uint64, tmdbID int64) (*domain.BookmarkResponse, error) {
	args := m.Called(ctx, userID, tmdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookmarkResponse), args.Error(1)
}

func (m *mockBookmarkService) Update(ctx context.Context, userID uint64, tmdbID int64, patch domain.BookmarkPatch) (*domain.BookmarkResponse, error) {
	args := m.Called(ctx, userID, tmdbID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookmarkResponse), args.Error(1)
}

func (m *mockBookmarkService) Delete(ctx context.Context, userID uint64, tmdbID int64) error {
	return m.Called(ctx, userID, tmdbID).Error(0)
}

func (m *mockBookmarkService) ListPublic(ctx context.Context) ([]*domain.PublicBookmarkResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PublicBookmarkResponse), args.Error(1)
}

type mockLikeService struct{ mock.Mock }

func (m *mockLikeService) Like(ctx context.Context, userID, bookmarkID uint64) (*domain.Like, error) {
	args := m.Called(ctx, userID, bookmarkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Like), args.Error(1)
}

func (m *mockLikeService) Unlike(ctx context.Context, userID, bookmarkID uint64) error {
	return m.Called(ctx, userID, bookmarkID).Error(0)
}

func (m *mockLikeService) Count(ctx context.Context, bookmarkID uint64) (int64, error) {
	args := m.Called(ctx, bookmarkID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMovieService struct{ mock.Mock }

func (m *mockMovieService) Popular(ctx context.Context, page int, language string) (*tmdb.Page, error) {
	args := m.Called(ctx, page, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}

func (m *mockMovieService) Search(ctx context.Context, query string, page int, language string) (*tmdb.Page, error) {
	args := m.Called(ctx, query, page, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.Page), args.Error(1)
}

func (m *mockMovieService) Detail(ctx context.Context, id int64, language string) (*tmdb.MovieDetail, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tmdb.MovieDetail), args.Error(1)
}

// ========================================
// Helpers
// ========================================

const testUserID uint64 = 7

func newTestTokens(t *testing.T) *jwt.Manager {
	t.Helper()
	mgr, err := jwt.NewManager("handler-test-secret", time.Hour)
	require.NoError(t, err)
	return mgr
}

func newTestRouter(tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.I18n(nil), middleware.SessionAuth(tokens))
	return r
}

// doRequest performs a request, optionally with a session cookie for userID
func doRequest(t *testing.T, r http.Handler, tokens *jwt.Manager, method, path, body string, userID uint64) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		token, err := tokens.GenerateToken(userID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) common.ErrorBody {
	t.Helper()
	var body common.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
