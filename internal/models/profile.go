// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Profile is a one-to-one extension of User. It exists only while its owning
// user exists; user deletion removes it in the same transaction.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Status    string    `json:"status"`
	Company   string    `json:"company"`
	Website   string    `json:"website"`
	Location  string    `json:"location"`
	Skills    string    `json:"skills"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
