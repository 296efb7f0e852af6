package services

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialhub/internal/models"
)

// openTestDB returns a fresh in-memory store with the full schema. A single
// pooled connection keeps every query on the same memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "not-a-real-hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedPost(t *testing.T, db *gorm.DB, author uint, title string, at time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Author: author, Title: title, Description: "d", CreatedAt: at}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("seed post %s: %v", title, err)
	}
	return post
}

// fakeMailer records outbound mail instead of talking SMTP.
type fakeMailer struct {
	to      []string
	bodies  []string
	failErr error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.to = append(m.to, to)
	m.bodies = append(m.bodies, body)
	return nil
}
