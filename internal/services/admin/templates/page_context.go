package templates

import "golang.org/x/text/message"

// Localizer formats catalog messages; *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key through loc. Without a localizer a string key is shown
// as-is.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if s, ok := key.(string); ok {
		return s
	}
	return ""
}

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// Title is the translated page title, without the app suffix.
	Title  string
	Toasts []Toast
}

// ToastKind selects the toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is one drained notification.
type Toast struct {
	Title   string
	Message string
	Kind    ToastKind
}
