package mutation

import (
	"errors"
	"strings"
)

// Message keys shared by every operation.
const (
	keySuccessTitle = "notify.success.title"
	keyErrorTitle   = "notify.error.title"
	keyErrorGeneric = "notify.error.generic"
)

type userMessager interface {
	UserMessage() string
}

// MessageFromError derives the operator-facing text for a failed mutation:
// the structured message carried by err when present, otherwise the generic
// localized message.
func MessageFromError(loc Localizer, err error) string {
	var messager userMessager
	if errors.As(err, &messager) {
		if msg := strings.TrimSpace(messager.UserMessage()); msg != "" {
			return msg
		}
	}
	return translate(loc, keyErrorGeneric)
}
