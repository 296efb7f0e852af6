package models

import "time"

// Post is a text post with an optional media attachment. Like and comment
// totals are derived from row counts, never stored on the post itself.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Author      uint      `json:"author" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:Author;constraint:OnDelete:CASCADE"`
}
