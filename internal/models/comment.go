package models

import (
	"time"
)

// Comment is a reply attached to a post. Name and Avatar are snapshots of the
// commenting user at write time, same as on Post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
