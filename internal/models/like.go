package models

import (
	"time"
)

// Like marks a user's like on a post. The (UserID, PostID) pair is unique so
// a user can hold at most one like per post; concurrent double-likes collapse
// at the database level.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"-"`
	CreatedAt time.Time `json:"-"`
}
