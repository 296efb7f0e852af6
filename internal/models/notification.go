package models

import "time"

// Notification types emitted by engagement and follow operations.
const (
	NotiLike    = "like"
	NotiComment = "comment"
	NotiFollow  = "follow"
)

// Notification is a one-way event record for UserID, caused by FromUserID.
// Created only when the actor differs from the recipient.
type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"userId" gorm:"not null;index"`
	FromUserID uint      `json:"fromUserId" gorm:"not null;index"`
	Type       string    `json:"type" gorm:"size:30;not null"`
	Message    string    `json:"message" gorm:"not null"`
	IsRead     bool      `json:"isRead" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`

	User     *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FromUser *User `json:"-" gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE"`
}
