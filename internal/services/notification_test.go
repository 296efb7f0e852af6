package services

import (
	"context"
	"errors"
	"testing"

	"socialhub/internal/models"
	"socialhub/internal/repository"
)

func TestNotify(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationService(repository.NewNotificationRepository(db))

	jane := seedUser(t, db, "jane", "jane@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	if err := notifications.Notify(ctx, jane.ID, jane.ID, models.NotiLike, LikeMessage()); err != nil {
		t.Fatalf("self notify: %v", err)
	}
	if err := notifications.Notify(ctx, jane.ID, bob.ID, models.NotiFollow, FollowMessage()); err != nil {
		t.Fatalf("notify: %v", err)
	}

	list, err := notifications.List(ctx, jane.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d notifications, want 1 (self-event dropped)", len(list))
	}
	got := list[0]
	if got.Type != models.NotiFollow || got.Message != FollowMessage() {
		t.Errorf("notification = %+v", got)
	}
	if got.FromUser == nil || got.FromUser.Name != "bob" {
		t.Errorf("fromUser = %+v, want bob", got.FromUser)
	}
}

func TestDeleteNotification(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	notifications := NewNotificationService(repository.NewNotificationRepository(db))

	jane := seedUser(t, db, "jane", "jane@example.com")
	bob := seedUser(t, db, "bob", "bob@example.com")

	if err := notifications.Notify(ctx, jane.ID, bob.ID, models.NotiLike, LikeMessage()); err != nil {
		t.Fatalf("notify: %v", err)
	}
	list, err := notifications.List(ctx, jane.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	id := list[0].ID

	// Someone else's notification reads as missing.
	if err := notifications.Delete(ctx, id, bob.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("foreign delete err = %v, want ErrNotificationNotFound", err)
	}
	if err := notifications.Delete(ctx, id, jane.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := notifications.Delete(ctx, id, jane.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotificationNotFound", err)
	}
}
