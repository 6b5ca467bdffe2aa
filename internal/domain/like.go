package domain

import "time"

// Like a user's like on a bookmark (likes table).
// (user_id, bookmark_id) is unique.
type Like struct {
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_likes_user_bookmark,priority:1" json:"userId"`
	BookmarkID uint64    `gorm:"column:bookmark_id;not null;uniqueIndex:uk_likes_user_bookmark,priority:2;index" json:"bookmarkId"`
}

func (Like) TableName() string {
	return "likes"
}

// LikeCountResponse GET /api/likes/:bookmarkId response
type LikeCountResponse struct {
	LikeCount int64 `json:"likeCount"`
}
