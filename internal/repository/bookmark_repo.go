package repository

import (
	"context"

	"github.com/cinefeel/cinefeel-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookmarkRepository bookmark, tag and association data access interface
type BookmarkRepository interface {
	// Read operations
	FindByID(ctx context.Context, id uint64) (*domain.Bookmark, error)
	FindByOwnerAndTmdb(ctx context.Context, userID uint64, tmdbID int64) (*domain.Bookmark, error)
	ListByUser(ctx context.Context, userID uint64) ([]*domain.Bookmark, error)
	ListPublic(ctx context.Context, limit int) ([]*domain.Bookmark, error)

	// Aggregates keyed by bookmark id
	TagNamesByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64][]string, error)
	LikeCountsByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64]int64, error)
	LikerIDsByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64][]uint64, error)

	// Write operations
	CreateIfAbsent(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, bool, error)
	ApplyPatch(ctx context.Context, id uint64, patch domain.BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, id uint64) error
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new BookmarkRepository
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// FindByID finds a bookmark by primary key
func (r *bookmarkRepository) FindByID(ctx context.Context, id uint64) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// FindByOwnerAndTmdb finds the owner's bookmark for a movie
func (r *bookmarkRepository) FindByOwnerAndTmdb(ctx context.Context, userID uint64, tmdbID int64) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tmdb_id = ?", userID, tmdbID).
		First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// ListByUser returns all bookmarks of a user, newest first
func (r *bookmarkRepository) ListByUser(ctx context.Context, userID uint64) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

// ListPublic returns the newest public bookmarks of all users
func (r *bookmarkRepository) ListPublic(ctx context.Context, limit int) ([]*domain.Bookmark, error) {
	var bookmarks []*domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&bookmarks).Error
	return bookmarks, err
}

// TagNamesByBookmarkIDs returns the tag names of each bookmark, sorted by name
func (r *bookmarkRepository) TagNamesByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64][]string, error) {
	tags := make(map[uint64][]string, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}

	var rows []struct {
		BookmarkID uint64
		Name       string
	}
	err := r.db.WithContext(ctx).
		Table("bookmark_tags").
		Select("bookmark_tags.bookmark_id, tags.name").
		Joins("JOIN tags ON tags.id = bookmark_tags.tag_id").
		Where("bookmark_tags.bookmark_id IN ?", ids).
		Order("tags.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tags[row.BookmarkID] = append(tags[row.BookmarkID], row.Name)
	}
	return tags, nil
}

// LikeCountsByBookmarkIDs returns the like count of each bookmark
func (r *bookmarkRepository) LikeCountsByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		BookmarkID uint64
		Cnt        int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Select("bookmark_id, COUNT(*) AS cnt").
		Where("bookmark_id IN ?", ids).
		Group("bookmark_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.BookmarkID] = row.Cnt
	}
	return counts, nil
}

// LikerIDsByBookmarkIDs returns the ids of the users who liked each bookmark, in like order
func (r *bookmarkRepository) LikerIDsByBookmarkIDs(ctx context.Context, ids []uint64) (map[uint64][]uint64, error) {
	likers := make(map[uint64][]uint64, len(ids))
	if len(ids) == 0 {
		return likers, nil
	}

	var rows []struct {
		BookmarkID uint64
		UserID     uint64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Select("bookmark_id, user_id").
		Where("bookmark_id IN ?", ids).
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		likers[row.BookmarkID] = append(likers[row.BookmarkID], row.UserID)
	}
	return likers, nil
}

// CreateIfAbsent inserts the bookmark unless the owner already bookmarked the
// movie. It is a single conditional insert on the (user_id, tmdb_id) unique
// index; on conflict the stored row is returned with created == false.
func (r *bookmarkRepository) CreateIfAbsent(ctx context.Context, bookmark *domain.Bookmark) (*domain.Bookmark, bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(bookmark)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		existing, err := r.FindByOwnerAndTmdb(ctx, bookmark.UserID, bookmark.TmdbID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return bookmark, true, nil
}

// ApplyPatch updates scalar fields and, when patch.Tags is set, replaces the
// bookmark's tag set. Everything runs in one transaction; any error rolls
// back all of it. Tag names must already be normalized.
func (r *bookmarkRepository) ApplyPatch(ctx context.Context, id uint64, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	var updated domain.Bookmark

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 조회 이후 삭제된 경우 쓰기 전에 ErrRecordNotFound
		if err := tx.Select("id").Where("id = ?", id).First(&domain.Bookmark{}).Error; err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if patch.Note != nil {
			fields["note"] = *patch.Note
		}
		if patch.IsPublic != nil {
			fields["is_public"] = *patch.IsPublic
		}
		if len(fields) > 0 {
			if err := tx.Model(&domain.Bookmark{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}

		if patch.Tags != nil {
			if err := replaceTags(tx, id, *patch.Tags); err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// replaceTags deletes every association of the bookmark, upserts each tag by
// name and links the resulting tag ids. Names that resolve to the same tag
// (e.g. under a case-insensitive collation) are linked once.
func replaceTags(tx *gorm.DB, bookmarkID uint64, names []string) error {
	if err := tx.Where("bookmark_id = ?", bookmarkID).Delete(&domain.BookmarkTag{}).Error; err != nil {
		return err
	}

	links := make([]domain.BookmarkTag, 0, len(names))
	seen := make(map[uint64]struct{}, len(names))
	for _, name := range names {
		// INSERT ... ON CONFLICT (name) DO NOTHING, then read back the id
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&domain.Tag{Name: name}).Error
		if err != nil {
			return err
		}

		var tag domain.Tag
		if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
			return err
		}
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		links = append(links, domain.BookmarkTag{BookmarkID: bookmarkID, TagID: tag.ID})
	}

	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

// Delete removes a bookmark together with its tag links and likes.
// Returns gorm.ErrRecordNotFound when no bookmark was deleted.
func (r *bookmarkRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bookmark_id = ?", id).Delete(&domain.BookmarkTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bookmark_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Bookmark{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
