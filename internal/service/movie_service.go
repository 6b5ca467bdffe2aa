package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/pkg/cache"
	"github.com/cinefeel/cinefeel-backend/pkg/logger"
	"github.com/cinefeel/cinefeel-backend/pkg/tmdb"
)

// MovieCatalog upstream movie source (implemented by *tmdb.Client)
type MovieCatalog interface {
	Enabled() bool
	Language() string
	Popular(ctx context.Context, page int, language string) (*tmdb.Page, error)
	Search(ctx context.Context, query string, page int, language string) (*tmdb.Page, error)
	Movie(ctx context.Context, id int64, language string) (*tmdb.MovieDetail, error)
}

// MovieService read-only movie catalog proxy with response caching
type MovieService interface {
	Popular(ctx context.Context, page int, language string) (*tmdb.Page, error)
	Search(ctx context.Context, query string, page int, language string) (*tmdb.Page, error)
	Detail(ctx context.Context, id int64, language string) (*tmdb.MovieDetail, error)
}

type movieService struct {
	catalog MovieCatalog
	cache   cache.Service
}

// NewMovieService creates a new MovieService
func NewMovieService(catalog MovieCatalog, cacheService cache.Service) MovieService {
	return &movieService{catalog: catalog, cache: cacheService}
}

// Popular returns a page of popular movies
func (s *movieService) Popular(ctx context.Context, page int, language string) (*tmdb.Page, error) {
	language = s.lang(language)
	page = tmdb.NormalizePage(page)
	key := cache.PopularKey(page, language)

	var cached tmdb.Page
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := s.catalog.Popular(ctx, page, language)
	if err != nil {
		return nil, catalogError(err)
	}
	s.store(ctx, key, result, cache.TTLPopular)
	return result, nil
}

// Search returns a page of movies matching query
func (s *movieService) Search(ctx context.Context, query string, page int, language string) (*tmdb.Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, common.ErrInvalidInput
	}
	language = s.lang(language)
	page = tmdb.NormalizePage(page)
	key := cache.SearchKey(query, page, language)

	var cached tmdb.Page
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := s.catalog.Search(ctx, query, page, language)
	if err != nil {
		return nil, catalogError(err)
	}
	s.store(ctx, key, result, cache.TTLSearch)
	return result, nil
}

// Detail returns one movie
func (s *movieService) Detail(ctx context.Context, id int64, language string) (*tmdb.MovieDetail, error) {
	if id <= 0 {
		return nil, common.ErrInvalidInput
	}
	language = s.lang(language)
	key := cache.MovieKey(id, language)

	var cached tmdb.MovieDetail
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := s.catalog.Movie(ctx, id, language)
	if err != nil {
		return nil, catalogError(err)
	}
	s.store(ctx, key, result, cache.TTLMovie)
	return result, nil
}

func (s *movieService) lang(language string) string {
	if language == "" {
		return s.catalog.Language()
	}
	return language
}

// lookup reads a cached response. Cache errors degrade to a miss.
func (s *movieService) lookup(ctx context.Context, key string, dest interface{}) bool {
	if !s.catalog.Enabled() {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		logger.GetLogger().Warn().Err(err).Str("key", key).Msg("movie cache read failed")
	}
	return err == nil
}

func (s *movieService) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		logger.GetLogger().Warn().Err(err).Str("key", key).Msg("movie cache write failed")
	}
}

func catalogError(err error) error {
	switch {
	case errors.Is(err, tmdb.ErrNotConfigured):
		return common.ErrCatalogUnavailable
	case errors.Is(err, tmdb.ErrNotFound):
		return common.ErrMovieNotFound
	default:
		return fmt.Errorf("%w: %v", common.ErrCatalogUpstream, err)
	}
}
