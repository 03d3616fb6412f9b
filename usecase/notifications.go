package usecase

import (
	"context"
	"time"

	"main/model"
	"main/utils"
)

// NotificationStore is the persistence surface for notifications.
type NotificationStore interface {
	Insert(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	FindByID(ctx context.Context, id string) (*model.Notification, error)
	SetRead(ctx context.Context, id string) error
	SetAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteRead(ctx context.Context, userID string) (int64, error)
}

type NotificationsService struct {
	store NotificationStore
}

func NewNotificationsService(store NotificationStore) *NotificationsService {
	return &NotificationsService{store: store}
}

// Dispatch fills in identity and defaults for a draft and persists it.
func (svc *NotificationsService) Dispatch(ctx context.Context, draft model.Notification) (*model.Notification, error) {
	if draft.UserID == "" || draft.Title == "" || draft.Message == "" {
		return nil, model.ErrValidation
	}
	if draft.Type == "" {
		draft.Type = model.NotificationSystem
	}
	if !draft.Type.Valid() {
		return nil, model.ErrValidation
	}
	if draft.ActionText == "" {
		draft.ActionText = draft.Type.DefaultActionText()
	}
	draft.NotificationID = utils.NewID()
	draft.CreatedAt = time.Now()

	if err := svc.store.Insert(ctx, &draft); err != nil {
		return nil, err
	}
	utils.TrackNotification(string(draft.Type))
	return &draft, nil
}

// List returns the user's notifications, newest first.
func (svc *NotificationsService) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	return svc.store.ListByUser(ctx, userID)
}

// MarkRead marks one owned notification as read. Marking an already
// read notification is a no-op.
func (svc *NotificationsService) MarkRead(ctx context.Context, id, userID string) (*model.Notification, error) {
	n, err := svc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, model.ErrNotFound
	}
	if n.UserID != userID {
		return nil, model.ErrNotOwner
	}
	if n.IsRead {
		return n, nil
	}
	if err := svc.store.SetRead(ctx, id); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

// MarkAllRead marks every unread notification read. Zero unread is a
// successful no-op.
func (svc *NotificationsService) MarkAllRead(ctx context.Context, userID string) error {
	_, err := svc.store.SetAllRead(ctx, userID)
	return err
}

// Delete permanently removes one owned notification.
func (svc *NotificationsService) Delete(ctx context.Context, id, userID string) error {
	n, err := svc.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return model.ErrNotFound
	}
	if n.UserID != userID {
		return model.ErrNotOwner
	}
	return svc.store.Delete(ctx, id)
}

// DeleteAllRead removes every read notification. Nothing to delete is a
// successful no-op.
func (svc *NotificationsService) DeleteAllRead(ctx context.Context, userID string) error {
	_, err := svc.store.DeleteRead(ctx, userID)
	return err
}
