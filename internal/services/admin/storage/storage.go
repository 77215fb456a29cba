package storage

import (
	"context"
	"time"
)

// Notification is a message queued for one operator session.
type Notification struct {
	ID        string
	SessionID string
	Title     string
	Message   string
	// Kind is "success" or "error".
	Kind      string
	CreatedAt time.Time
}

// NotificationStore queues notifications until the next page render.
type NotificationStore interface {
	PutNotification(ctx context.Context, notification Notification) error
	// DrainNotifications returns the session's notifications oldest first and
	// removes them.
	DrainNotifications(ctx context.Context, sessionID string) ([]Notification, error)
}

// OperatorSessionStore records operator browser sessions.
type OperatorSessionStore interface {
	PutOperatorSession(ctx context.Context, sessionID string, createdAt time.Time) error
	TouchOperatorSession(ctx context.Context, sessionID string, seenAt time.Time) error
	OperatorSessionExists(ctx context.Context, sessionID string) (bool, error)
	// DeleteOperatorSessionsBefore removes sessions last seen before cutoff,
	// with their notifications.
	DeleteOperatorSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	NotificationStore
	OperatorSessionStore
	Close() error
}
