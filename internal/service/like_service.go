package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinefeel/cinefeel-backend/internal/common"
	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"github.com/cinefeel/cinefeel-backend/internal/repository"
	"gorm.io/gorm"
)

// LikeService business logic for likes
type LikeService interface {
	Like(ctx context.Context, userID, bookmarkID uint64) (*domain.Like, error)
	Unlike(ctx context.Context, userID, bookmarkID uint64) error
	Count(ctx context.Context, bookmarkID uint64) (int64, error)
}

type likeService struct {
	repo         repository.LikeRepository
	bookmarkRepo repository.BookmarkRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(repo repository.LikeRepository, bookmarkRepo repository.BookmarkRepository) LikeService {
	return &likeService{repo: repo, bookmarkRepo: bookmarkRepo}
}

// Like records the user's like. The bookmark must be public or owned by the
// user; a second like by the same user fails with ErrAlreadyLiked.
func (s *likeService) Like(ctx context.Context, userID, bookmarkID uint64) (*domain.Like, error) {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("find bookmark: %w", err)
	}
	if !bookmark.IsPublic && bookmark.UserID != userID {
		return nil, common.ErrBookmarkNotFound
	}

	like := &domain.Like{UserID: userID, BookmarkID: bookmarkID}
	if err := s.repo.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.ErrAlreadyLiked
		}
		return nil, fmt.Errorf("create like: %w", err)
	}
	return like, nil
}

// Unlike removes the user's like. Removing a like that does not exist succeeds.
func (s *likeService) Unlike(ctx context.Context, userID, bookmarkID uint64) error {
	if _, err := s.repo.Delete(ctx, userID, bookmarkID); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// Count returns the number of likes on a bookmark
func (s *likeService) Count(ctx context.Context, bookmarkID uint64) (int64, error) {
	count, err := s.repo.CountByBookmark(ctx, bookmarkID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return count, nil
}
