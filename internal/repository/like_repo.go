package repository

import (
	"context"

	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"gorm.io/gorm"
)

// LikeRepository like data access interface
type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, userID, bookmarkID uint64) (int64, error)
	CountByBookmark(ctx context.Context, bookmarkID uint64) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. The (user_id, bookmark_id) unique index rejects a
// second like with gorm.ErrDuplicatedKey.
func (r *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// Delete removes the user's like on a bookmark and returns the number of rows removed
func (r *likeRepository) Delete(ctx context.Context, userID, bookmarkID uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND bookmark_id = ?", userID, bookmarkID).
		Delete(&domain.Like{})
	return result.RowsAffected, result.Error
}

// CountByBookmark returns the number of likes on a bookmark
func (r *likeRepository) CountByBookmark(ctx context.Context, bookmarkID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("bookmark_id = ?", bookmarkID).
		Count(&count).Error
	return count, err
}
