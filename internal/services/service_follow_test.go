package services

import (
	"context"
	"errors"
	"testing"

	"socialhub/internal/models"
	"socialhub/internal/repository"
)

func TestFollow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	followSvc := NewFollowService(
		repository.NewFollowRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db)),
	)

	alice := seedUser(t, db, "alice", "alice@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	if err := followSvc.Follow(ctx, alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("self follow err = %v, want ErrSelfFollow", err)
	}

	if err := followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := followSvc.Follow(ctx, alice.ID, bob.ID); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("second follow err = %v, want ErrAlreadyFollowing", err)
	}

	var edges int64
	if err := db.Model(&models.Follow{}).Count(&edges).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	if edges != 1 {
		t.Fatalf("got %d follow rows, want 1", edges)
	}

	var noti models.Notification
	if err := db.Where("user_id = ? AND type = ?", bob.ID, models.NotiFollow).First(&noti).Error; err != nil {
		t.Fatalf("load follow notification: %v", err)
	}
	if noti.FromUserID != alice.ID || noti.Message != FollowMessage() {
		t.Errorf("notification = %+v", noti)
	}

	// The edge is directed; bob does not follow alice back.
	following, err := followSvc.Following(ctx, bob.ID)
	if err != nil {
		t.Fatalf("Following: %v", err)
	}
	if len(following) != 0 {
		t.Fatalf("bob follows %d users, want 0", len(following))
	}
}

func TestUnfollow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	followSvc := NewFollowService(
		repository.NewFollowRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db)),
	)

	alice := seedUser(t, db, "alice", "alice@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	if err := followSvc.Unfollow(ctx, alice.ID, alice.ID); !errors.Is(err, ErrSelfUnfollow) {
		t.Fatalf("self unfollow err = %v, want ErrSelfUnfollow", err)
	}
	if err := followSvc.Unfollow(ctx, alice.ID, bob.ID); !errors.Is(err, ErrNotFollowing) {
		t.Fatalf("unfollow without edge err = %v, want ErrNotFollowing", err)
	}

	if err := followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := followSvc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := followSvc.Unfollow(ctx, alice.ID, bob.ID); !errors.Is(err, ErrNotFollowing) {
		t.Fatalf("repeated unfollow err = %v, want ErrNotFollowing", err)
	}
}

func TestFollowersAndFollowingLists(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	followSvc := NewFollowService(
		repository.NewFollowRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db)),
	)

	hub := seedUser(t, db, "hub", "hub@example.com")
	fan1 := seedUser(t, db, "fan1", "fan1@example.com")
	fan2 := seedUser(t, db, "fan2", "fan2@example.com")

	for _, fan := range []uint{fan1.ID, fan2.ID} {
		if err := followSvc.Follow(ctx, fan, hub.ID); err != nil {
			t.Fatalf("follow: %v", err)
		}
	}
	if err := followSvc.Follow(ctx, hub.ID, fan1.ID); err != nil {
		t.Fatalf("follow back: %v", err)
	}

	followers, err := followSvc.Followers(ctx, hub.ID)
	if err != nil {
		t.Fatalf("Followers: %v", err)
	}
	if len(followers) != 2 {
		t.Fatalf("got %d followers, want 2", len(followers))
	}

	following, err := followSvc.Following(ctx, hub.ID)
	if err != nil {
		t.Fatalf("Following: %v", err)
	}
	if len(following) != 1 || following[0].User.Name != "fan1" {
		t.Fatalf("following = %+v, want just fan1", following)
	}
}
