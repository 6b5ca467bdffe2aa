package domain

import "time"

// Bookmark a movie saved by a user (bookmarks table).
// (user_id, tmdb_id) is unique: a user bookmarks a movie at most once.
type Bookmark struct {
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	PosterPath *string   `gorm:"column:poster_path;size:500" json:"posterPath"`
	Note       *string   `gorm:"column:note;type:text" json:"note"`
	Title      string    `gorm:"column:title;size:255;not null" json:"title"`
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_bookmarks_user_tmdb,priority:1" json:"userId"`
	TmdbID     int64     `gorm:"column:tmdb_id;not null;uniqueIndex:uk_bookmarks_user_tmdb,priority:2" json:"tmdbId"`
	IsPublic   bool      `gorm:"column:is_public;not null;default:false;index" json:"isPublic"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// Tag free-form label shared by all users (tags table)
type Tag struct {
	Name string `gorm:"column:name;size:100;uniqueIndex;not null" json:"name"`
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
}

func (Tag) TableName() string {
	return "tags"
}

// BookmarkTag bookmark to tag association (bookmark_tags table)
type BookmarkTag struct {
	BookmarkID uint64 `gorm:"column:bookmark_id;primaryKey;autoIncrement:false"`
	TagID      uint64 `gorm:"column:tag_id;primaryKey;autoIncrement:false;index"`
}

func (BookmarkTag) TableName() string {
	return "bookmark_tags"
}

// BookmarkPatch partial update of a bookmark. A nil field is left untouched;
// a non-nil Tags (even empty) replaces the whole tag set.
type BookmarkPatch struct {
	Note     *string
	IsPublic *bool
	Tags     *[]string
}

// CreateBookmarkRequest POST /api/bookmarks body
type CreateBookmarkRequest struct {
	PosterPath *string `json:"posterPath"`
	Title      string  `json:"title" binding:"required"`
	TmdbID     int64   `json:"tmdbId" binding:"required"`
}

// UpdateBookmarkRequest PATCH /api/bookmarks/:tmdbId body
type UpdateBookmarkRequest struct {
	Note     *string   `json:"note"`
	IsPublic *bool     `json:"isPublic"`
	Tags     *[]string `json:"tags"`
}

// ToPatch converts the request body to a BookmarkPatch
func (r *UpdateBookmarkRequest) ToPatch() BookmarkPatch {
	return BookmarkPatch{Note: r.Note, IsPublic: r.IsPublic, Tags: r.Tags}
}

// BookmarkResponse bookmark with its tag names and like count
type BookmarkResponse struct {
	CreatedAt  time.Time `json:"createdAt"`
	PosterPath *string   `json:"posterPath"`
	Note       *string   `json:"note"`
	Title      string    `json:"title"`
	Tags       []string  `json:"tags"`
	ID         uint64    `json:"id"`
	TmdbID     int64     `json:"tmdbId"`
	LikeCount  int64     `json:"likeCount"`
	IsPublic   bool      `json:"isPublic"`
}

// BookmarkAuthor owner summary shown on public bookmarks
type BookmarkAuthor struct {
	Nickname string `json:"nickname"`
	ID       uint64 `json:"id"`
}

// PublicBookmarkResponse public feed entry
type PublicBookmarkResponse struct {
	BookmarkResponse
	LikedUserIDs []uint64       `json:"likedUserIds"`
	Author       BookmarkAuthor `json:"author"`
}

// ToResponse converts Bookmark to BookmarkResponse
func (b *Bookmark) ToResponse(tags []string, likeCount int64) *BookmarkResponse {
	if tags == nil {
		tags = []string{}
	}
	return &BookmarkResponse{
		ID:         b.ID,
		TmdbID:     b.TmdbID,
		Title:      b.Title,
		PosterPath: b.PosterPath,
		Note:       b.Note,
		IsPublic:   b.IsPublic,
		CreatedAt:  b.CreatedAt,
		Tags:       tags,
		LikeCount:  likeCount,
	}
}
