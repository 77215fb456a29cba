package admin

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/storeadmin/internal/platform/id"
	"github.com/louisbranch/storeadmin/internal/platform/requestctx"
	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
	"github.com/louisbranch/storeadmin/internal/services/admin/storage"
	"github.com/louisbranch/storeadmin/internal/services/admin/templates"
)

// inboxNotifier queues notifications for the operator session in context.
// They are shown as toasts on the session's next render.
type inboxNotifier struct {
	store storage.NotificationStore
	clock func() time.Time
}

func (n inboxNotifier) Notify(ctx context.Context, title string, msg string, kind mutation.NotificationKind) {
	sessionID := requestctx.SessionIDFromContext(ctx)
	if sessionID == "" || n.store == nil {
		log.Printf("drop %s notification without session: %s", kind, msg)
		return
	}
	notificationID, err := id.NewID()
	if err != nil {
		log.Printf("notification id: %v", err)
		return
	}
	clock := n.clock
	if clock == nil {
		clock = time.Now
	}
	if err := n.store.PutNotification(ctx, storage.Notification{
		ID:        notificationID,
		SessionID: sessionID,
		Title:     title,
		Message:   msg,
		Kind:      string(kind),
		CreatedAt: clock(),
	}); err != nil {
		log.Printf("queue notification: %v", err)
	}
}

// drainToasts returns and clears the queued notifications of the session in
// context.
func (n inboxNotifier) drainToasts(ctx context.Context) []templates.Toast {
	sessionID := requestctx.SessionIDFromContext(ctx)
	if sessionID == "" || n.store == nil {
		return nil
	}
	notifications, err := n.store.DrainNotifications(ctx, sessionID)
	if err != nil {
		log.Printf("drain notifications: %v", err)
		return nil
	}
	toasts := make([]templates.Toast, 0, len(notifications))
	for _, notification := range notifications {
		kind := templates.ToastSuccess
		if notification.Kind == string(mutation.KindError) {
			kind = templates.ToastError
		}
		toasts = append(toasts, templates.Toast{
			Title:   notification.Title,
			Message: notification.Message,
			Kind:    kind,
		})
	}
	return toasts
}
