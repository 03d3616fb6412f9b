package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"

	"github.com/google/uuid"
)

type fakeNotificationStore struct {
	notifications map[string]*model.Notification
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: make(map[string]*model.Notification)}
}

func (s *fakeNotificationStore) Insert(ctx context.Context, n *model.Notification) error {
	copied := *n
	s.notifications[n.NotificationID] = &copied
	return nil
}

func (s *fakeNotificationStore) ListByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	var out []*model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			copied := *n
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (s *fakeNotificationStore) SetRead(ctx context.Context, id string) error {
	n, ok := s.notifications[id]
	if !ok {
		return model.ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (s *fakeNotificationStore) SetAllRead(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func (s *fakeNotificationStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.notifications[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.notifications, id)
	return nil
}

func (s *fakeNotificationStore) DeleteRead(ctx context.Context, userID string) (int64, error) {
	var count int64
	for id, n := range s.notifications {
		if n.UserID == userID && n.IsRead {
			delete(s.notifications, id)
			count++
		}
	}
	return count, nil
}

func TestDispatchFillsDefaults(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationsService(store)

	userID := uuid.New().String()
	n, err := service.Dispatch(context.Background(), model.Notification{
		UserID:  userID,
		Title:   "Welcome",
		Message: "Glad you are here",
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if n.NotificationID == "" {
		t.Error("Expected generated notification id")
	}
	if n.Type != model.NotificationSystem {
		t.Errorf("Expected system default type, got %s", n.Type)
	}
	if n.ActionText != "View" {
		t.Errorf("Expected default action text, got %q", n.ActionText)
	}
	if n.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestDispatchRejectsUnknownType(t *testing.T) {
	service := NewNotificationsService(newFakeNotificationStore())

	_, err := service.Dispatch(context.Background(), model.Notification{
		UserID:  uuid.New().String(),
		Type:    "carrier-pigeon",
		Title:   "Hi",
		Message: "There",
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("Expected ErrValidation, got %v", err)
	}
}

func TestDispatchActionTextPerType(t *testing.T) {
	service := NewNotificationsService(newFakeNotificationStore())

	tests := []struct {
		notificationType model.NotificationType
		actionText       string
	}{
		{model.NotificationAchievement, "View achievement"},
		{model.NotificationReminder, "Open habit"},
		{model.NotificationComment, "View comment"},
		{model.NotificationLike, "View post"},
	}
	for _, tt := range tests {
		n, err := service.Dispatch(context.Background(), model.Notification{
			UserID:  uuid.New().String(),
			Type:    tt.notificationType,
			Title:   "t",
			Message: "m",
		})
		if err != nil {
			t.Fatalf("Dispatch(%s) failed: %v", tt.notificationType, err)
		}
		if n.ActionText != tt.actionText {
			t.Errorf("Type %s: expected action text %q, got %q",
				tt.notificationType, tt.actionText, n.ActionText)
		}
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationsService(store)

	userID := uuid.New().String()
	n, err := service.Dispatch(context.Background(), model.Notification{
		UserID: userID, Title: "t", Message: "m",
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	first, err := service.MarkRead(context.Background(), n.NotificationID, userID)
	if err != nil || !first.IsRead {
		t.Fatalf("First MarkRead failed: %v", err)
	}

	second, err := service.MarkRead(context.Background(), n.NotificationID, userID)
	if err != nil || !second.IsRead {
		t.Fatalf("Second MarkRead should be a no-op success, got %v", err)
	}
}

func TestMarkReadOwnership(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationsService(store)

	n, err := service.Dispatch(context.Background(), model.Notification{
		UserID: uuid.New().String(), Title: "t", Message: "m",
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	_, err = service.MarkRead(context.Background(), n.NotificationID, uuid.New().String())
	if !errors.Is(err, model.ErrNotOwner) {
		t.Fatalf("Expected ErrNotOwner, got %v", err)
	}
}

func TestMarkAllReadEmptyIsOK(t *testing.T) {
	service := NewNotificationsService(newFakeNotificationStore())
	if err := service.MarkAllRead(context.Background(), uuid.New().String()); err != nil {
		t.Fatalf("MarkAllRead on empty set failed: %v", err)
	}
}

func TestDeleteAllReadKeepsUnread(t *testing.T) {
	store := newFakeNotificationStore()
	service := NewNotificationsService(store)

	userID := uuid.New().String()
	read, _ := service.Dispatch(context.Background(), model.Notification{
		UserID: userID, Title: "read", Message: "m",
	})
	unread, _ := service.Dispatch(context.Background(), model.Notification{
		UserID: userID, Title: "unread", Message: "m",
	})
	if _, err := service.MarkRead(context.Background(), read.NotificationID, userID); err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}

	if err := service.DeleteAllRead(context.Background(), userID); err != nil {
		t.Fatalf("DeleteAllRead failed: %v", err)
	}

	remaining, _ := service.List(context.Background(), userID)
	if len(remaining) != 1 || remaining[0].NotificationID != unread.NotificationID {
		t.Errorf("Expected only the unread notification to remain, got %v", remaining)
	}
}

func TestDeleteMissingNotification(t *testing.T) {
	service := NewNotificationsService(newFakeNotificationStore())
	err := service.Delete(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
