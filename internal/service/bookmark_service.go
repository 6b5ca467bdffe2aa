package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/repository"
	"gorm.io/gorm"
)

// PublicFeedLimit maximum number of entries in the public feed
const PublicFeedLimit = 50

// BookmarkService business logic for bookmarks
type BookmarkService interface {
	Create(ctx context.Context, userID uint64, req *domain.CreateBookmarkRequest) (*domain.Bookmark, bool, error)
	List(ctx context.Context, userID uint64) ([]*domain.BookmarkResponse, error)
	Get(ctx context.Context, userID uint64, tmdbID int64) (*domain.BookmarkResponse, error)
	Update(ctx context.Context, userID uint64, tmdbID int64, patch domain.BookmarkPatch) (*domain.BookmarkResponse, error)
	Delete(ctx context.Context, userID uint64, tmdbID int64) error
	ListPublic(ctx context.Context) ([]*domain.PublicBookmarkResponse, error)
}

type bookmarkService struct {
	repo     repository.BookmarkRepository
	userRepo repository.UserRepository
}

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(repo repository.BookmarkRepository, userRepo repository.UserRepository) BookmarkService {
	return &bookmarkService{repo: repo, userRepo: userRepo}
}

// NormalizeTags trims each name, strips one leading '#' and drops empty
// results. Case is preserved and duplicates are kept.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		name := strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if name == "" {
			continue
		}
		normalized = append(normalized, name)
	}
	return normalized
}

// Create bookmarks a movie. Returns created == false with the stored row when
// the user already bookmarked it.
func (s *bookmarkService) Create(ctx context.Context, userID uint64, req *domain.CreateBookmarkRequest) (*domain.Bookmark, bool, error) {
	title := strings.TrimSpace(req.Title)
	if req.TmdbID <= 0 || title == "" {
		return nil, false, common.ErrInvalidInput
	}

	bookmark, created, err := s.repo.CreateIfAbsent(ctx, &domain.Bookmark{
		UserID:     userID,
		TmdbID:     req.TmdbID,
		Title:      title,
		PosterPath: req.PosterPath,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create bookmark: %w", err)
	}
	return bookmark, created, nil
}

// List returns the user's bookmarks, newest first, with tags and like counts
func (s *bookmarkService) List(ctx context.Context, userID uint64) ([]*domain.BookmarkResponse, error) {
	bookmarks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}

	ids := bookmarkIDs(bookmarks)
	tags, err := s.repo.TagNamesByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	counts, err := s.repo.LikeCountsByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load like counts: %w", err)
	}

	result := make([]*domain.BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		result = append(result, b.ToResponse(tags[b.ID], counts[b.ID]))
	}
	return result, nil
}

// Get returns one of the user's bookmarks by movie id
func (s *bookmarkService) Get(ctx context.Context, userID uint64, tmdbID int64) (*domain.BookmarkResponse, error) {
	bookmark, err := s.findOwned(ctx, userID, tmdbID)
	if err != nil {
		return nil, err
	}
	return s.withAggregates(ctx, bookmark)
}

// Update applies a partial update to the user's bookmark for tmdbID. When
// patch.Tags is set the tag set is replaced in the same transaction as the
// scalar fields.
func (s *bookmarkService) Update(ctx context.Context, userID uint64, tmdbID int64, patch domain.BookmarkPatch) (*domain.BookmarkResponse, error) {
	bookmark, err := s.findOwned(ctx, userID, tmdbID)
	if err != nil {
		return nil, err
	}

	if patch.Tags != nil {
		tags := NormalizeTags(*patch.Tags)
		patch.Tags = &tags
	}

	updated, err := s.repo.ApplyPatch(ctx, bookmark.ID, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	return s.withAggregates(ctx, updated)
}

// Delete removes the user's bookmark for tmdbID
func (s *bookmarkService) Delete(ctx context.Context, userID uint64, tmdbID int64) error {
	bookmark, err := s.findOwned(ctx, userID, tmdbID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookmark.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrBookmarkNotFound
		}
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// ListPublic returns the newest public bookmarks with likers and author
func (s *bookmarkService) ListPublic(ctx context.Context) ([]*domain.PublicBookmarkResponse, error) {
	bookmarks, err := s.repo.ListPublic(ctx, PublicFeedLimit)
	if err != nil {
		return nil, fmt.Errorf("list public bookmarks: %w", err)
	}

	ids := bookmarkIDs(bookmarks)
	tags, err := s.repo.TagNamesByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	likers, err := s.repo.LikerIDsByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load likers: %w", err)
	}

	ownerIDs := make([]uint64, 0, len(bookmarks))
	seen := make(map[uint64]struct{}, len(bookmarks))
	for _, b := range bookmarks {
		if _, ok := seen[b.UserID]; !ok {
			seen[b.UserID] = struct{}{}
			ownerIDs = append(ownerIDs, b.UserID)
		}
	}
	nicks, err := s.userRepo.FindNicksByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	result := make([]*domain.PublicBookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		liked := likers[b.ID]
		if liked == nil {
			liked = []uint64{}
		}
		result = append(result, &domain.PublicBookmarkResponse{
			BookmarkResponse: *b.ToResponse(tags[b.ID], int64(len(liked))),
			LikedUserIDs:     liked,
			Author:           domain.BookmarkAuthor{ID: b.UserID, Nickname: nicks[b.UserID]},
		})
	}
	return result, nil
}

// findOwned resolves a bookmark by (owner, movie). Other users' bookmarks are
// reported as not found.
func (s *bookmarkService) findOwned(ctx context.Context, userID uint64, tmdbID int64) (*domain.Bookmark, error) {
	bookmark, err := s.repo.FindByOwnerAndTmdb(ctx, userID, tmdbID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	return bookmark, nil
}

func (s *bookmarkService) withAggregates(ctx context.Context, bookmark *domain.Bookmark) (*domain.BookmarkResponse, error) {
	ids := []uint64{bookmark.ID}
	tags, err := s.repo.TagNamesByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	counts, err := s.repo.LikeCountsByBookmarkIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load like counts: %w", err)
	}
	return bookmark.ToResponse(tags[bookmark.ID], counts[bookmark.ID]), nil
}

func bookmarkIDs(bookmarks []*domain.Bookmark) []uint64 {
	ids := make([]uint64, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.ID)
	}
	return ids
}
