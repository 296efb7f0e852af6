package models

import "time"

// Follow is a directed edge: follower receives following's posts in their
// feed. Self-follows are rejected at the service layer; duplicates by the
// composite unique index.
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"not null;uniqueIndex:idx_follower_following;index"`
	FollowingID uint      `json:"following_id" gorm:"not null;uniqueIndex:idx_follower_following;index"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Following *User `json:"-" gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE"`
}
