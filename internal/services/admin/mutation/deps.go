package mutation

import (
	"context"

	"golang.org/x/text/message"
)

// NotificationKind is the tone of a notification.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notifier receives operator-facing notifications. Delivery is fire and forget.
type Notifier interface {
	Notify(ctx context.Context, title string, msg string, kind NotificationKind)
}

// Invalidator drops a cached resource by key and refetches it. Invalidate
// returns once the refetch has finished.
type Invalidator interface {
	Invalidate(ctx context.Context, key string) error
}

// Navigator moves the operator to another page.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// Prompt is the content of a confirmation dialog.
type Prompt struct {
	Heading string
	Text    string
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// Localizer translates message keys.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

func translate(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}
