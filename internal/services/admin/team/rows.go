package team

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// ActionKind identifies a row action.
type ActionKind string

const (
	ActionEdit     ActionKind = "edit"
	ActionDelete   ActionKind = "delete"
	ActionResend   ActionKind = "resend"
	ActionCopyLink ActionKind = "copy-link"
)

// Action is one entry of a row's action menu.
type Action struct {
	Kind ActionKind
	// Label is a localization key.
	Label    string
	Danger   bool
	Disabled bool
}

// Row is the render unit for one record.
type Row struct {
	Key      string
	Type     EntityType
	ID       string
	Name     string
	Initials string
	Email    string
	// RoleLabel is a localization key, blank for invites.
	RoleLabel string
	// Status is blank for users.
	Status  InviteStatus
	Actions []Action
}

// RowContext carries page state that affects rendering.
type RowContext struct {
	// SettingsLoading disables actions that depend on store settings.
	SettingsLoading bool
}

// BuildRows renders records at now.
func BuildRows(records []Record, rc RowContext, now time.Time) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, buildRow(record, rc, now))
	}
	return rows
}

func buildRow(record Record, rc RowContext, now time.Time) Row {
	row := Row{Key: record.Key(), Type: record.Type(), ID: record.ID()}
	Visit(record,
		func(u commerce.User) struct{} {
			row.Name = displayName(u)
			row.Initials = initials(u.FirstName, u.LastName, u.Email)
			row.Email = u.Email
			row.RoleLabel = "team.role." + string(u.Role)
			row.Actions = []Action{
				{Kind: ActionEdit, Label: "team.action.edit_user"},
				{Kind: ActionDelete, Label: "team.action.delete_user", Danger: true},
			}
			return struct{}{}
		},
		func(i commerce.Invite) struct{} {
			row.Name = i.UserEmail
			row.Initials = initials("", "", i.UserEmail)
			row.Email = i.UserEmail
			row.Status = StatusOf(i, now)
			row.Actions = []Action{
				{Kind: ActionResend, Label: "team.action.resend_invite"},
				{Kind: ActionCopyLink, Label: "team.action.copy_invite_link", Disabled: rc.SettingsLoading},
				{Kind: ActionDelete, Label: "team.action.delete_invite", Danger: true},
			}
			return struct{}{}
		},
	)
	return row
}

func displayName(u commerce.User) string {
	name := strings.TrimSpace(strings.Join([]string{u.FirstName, u.LastName}, " "))
	if name == "" {
		return u.Email
	}
	return name
}

func initials(first, last, fallback string) string {
	var b strings.Builder
	for _, part := range []string{first, last} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() > 0 {
		return b.String()
	}
	if r, _ := utf8.DecodeRuneInString(fallback); r != utf8.RuneError {
		return string(unicode.ToUpper(r))
	}
	return ""
}
