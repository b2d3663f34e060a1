// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post is an authored text entry. Name and Avatar are point-in-time copies of
// the authoring user taken at creation; they are never re-joined against the
// users table, so later profile changes do not rewrite history.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`

	// Likes and Comments are preloaded newest-first.
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments"`
}
