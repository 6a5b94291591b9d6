package usecase

import (
	"context"

	"pawsconnect/internal/domain/entity"
)

// NotificationUsecase defines per-user notification operations.
// Notifications are created by the system, never by API callers.
type NotificationUsecase interface {
	// ListMyNotifications returns the notifications addressed to a user,
	// newest first.
	ListMyNotifications(ctx context.Context, userID int64) ([]*entity.Notification, error)

	// MarkRead flags one of the caller's notifications as read. A
	// notification addressed to someone else is rejected.
	MarkRead(ctx context.Context, notificationID, userID int64) error
}
