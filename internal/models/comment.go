package models

import "time"

// Comment is free text attached to a post by a user. Only the author may
// edit or delete it.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	PostID    uint      `json:"postId" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
