package team

import "strings"

// InviteTokenPlaceholder is replaced by the invite token in link templates.
const InviteTokenPlaceholder = "{invite_token}"

// InviteLink builds a shareable invitation URL. Only the first placeholder is
// substituted. A nil template falls back to "<origin>/invite?token={invite_token}".
func InviteLink(template *string, origin string, token string) string {
	pattern := strings.TrimRight(origin, "/") + "/invite?token=" + InviteTokenPlaceholder
	if template != nil {
		pattern = *template
	}
	return strings.Replace(pattern, InviteTokenPlaceholder, token, 1)
}
