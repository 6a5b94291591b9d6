// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pawsconnect/internal/domain/entity"
	"pawsconnect/internal/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines notification database operations.
type NotificationRepository interface {
	// Create persists a new notification for a user.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by id.
	// Returns ErrNotificationNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Notification, error)

	// ListByUser returns all notifications addressed to a user, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id int64) error
}
