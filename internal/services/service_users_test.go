package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

func TestUpdateProfile(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users := NewUserService(repository.NewUserRepository(db))

	jane := seedUser(t, db, "jane", "jane@example.com")
	seedUser(t, db, "taken", "taken@example.com")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := users.UpdateProfile(ctx, jane.ID, dto.UpdateProfileRequest{Lastname: "Doe"})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if updated.Name != "jane" || updated.Lastname != "Doe" || updated.Email != "jane@example.com" {
			t.Errorf("user = %+v", updated)
		}
	})

	t.Run("email collision", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, jane.ID, dto.UpdateProfileRequest{Email: "taken@example.com"})
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("err = %v, want ErrEmailInUse", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, 9999, dto.UpdateProfileRequest{Name: "x"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestSearchByNamePrefix(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users := NewUserService(repository.NewUserRepository(db))

	seedUser(t, db, "Anna", "anna@example.com")
	seedUser(t, db, "annabel", "annabel@example.com")
	seedUser(t, db, "Joanna", "joanna@example.com")

	got, err := users.Search(ctx, "ann")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2 (prefix only, case-insensitive): %+v", len(got), got)
	}
	for _, u := range got {
		if u.Name == "Joanna" {
			t.Error("substring match leaked into prefix search")
		}
	}
}

func TestListAllWithPostCount(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users := NewUserService(repository.NewUserRepository(db))

	writer := seedUser(t, db, "writer", "writer@example.com")
	seedUser(t, db, "reader", "reader@example.com")
	seedPost(t, db, writer.ID, "one", time.Now())
	seedPost(t, db, writer.ID, "two", time.Now())

	got, err := users.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	counts := make(map[string]int64, len(got))
	for _, u := range got {
		counts[u.Name] = u.PostCount
	}
	if counts["writer"] != 2 || counts["reader"] != 0 {
		t.Fatalf("post counts = %v", counts)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users := NewUserService(repository.NewUserRepository(db))
	_, engagement, followSvc := newFeedFixture(db)

	jane := seedUser(t, db, "jane", "jane@example.com")
	fan := seedUser(t, db, "fan", "fan@example.com")
	post := seedPost(t, db, jane.ID, "p", time.Now())

	if err := followSvc.Follow(ctx, fan.ID, jane.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if _, _, err := engagement.ToggleLike(ctx, fan.ID, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := engagement.AddComment(ctx, fan.ID, post.ID, "hi"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := users.Delete(ctx, jane.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := users.Delete(ctx, jane.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second delete err = %v, want ErrUserNotFound", err)
	}

	for _, probe := range []struct {
		name  string
		model any
	}{
		{"posts", &models.Post{}},
		{"likes", &models.Like{}},
		{"comments", &models.Comment{}},
		{"follows", &models.Follow{}},
		{"notifications", &models.Notification{}},
	} {
		var rows int64
		if err := db.Model(probe.model).Count(&rows).Error; err != nil {
			t.Fatalf("count %s: %v", probe.name, err)
		}
		if rows != 0 {
			t.Errorf("%s left %d rows after account deletion", probe.name, rows)
		}
	}
}
