package models

import "time"

// Like marks that a user liked a post. The composite unique index is what
// makes toggle-like safe under concurrent duplicate requests: the insert
// either wins or reports a duplicate, there is no read-then-write window.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_like_user_post"`
	PostID    uint      `json:"postId" gorm:"not null;uniqueIndex:idx_like_user_post;index"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
