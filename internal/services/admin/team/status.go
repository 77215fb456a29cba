package team

import (
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// InviteStatus is the derived state of an invite.
type InviteStatus string

const (
	InvitePending InviteStatus = "pending"
	InviteExpired InviteStatus = "expired"
)

// StatusOf derives the invite status at now. An invite expiring exactly at now
// is still pending.
func StatusOf(invite commerce.Invite, now time.Time) InviteStatus {
	if invite.ExpiresAt.Before(now) {
		return InviteExpired
	}
	return InvitePending
}
