package models

import "time"

// User is an account holder. Password always carries a bcrypt hash,
// never plaintext, and is excluded from JSON.
type User struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	Name                 string     `json:"name" gorm:"not null"`
	Lastname             string     `json:"lastname"`
	Email                string     `json:"email" gorm:"uniqueIndex;not null"`
	Password             string     `json:"-" gorm:"not null"`
	ResetPasswordToken   *string    `json:"-" gorm:"index"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// PublicUser is the display subset embedded in posts, likes and notifications.
type PublicUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Lastname: u.Lastname, Email: u.Email}
}
