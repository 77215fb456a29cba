package team

import "github.com/louisbranch/storeadmin/internal/services/admin/commerce"

// PendingKind names the operator's pending action.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingEditUser
	PendingConfirmUserDelete
	PendingConfirmInviteDelete
)

// String returns a stable name for logs and templates.
func (k PendingKind) String() string {
	switch k {
	case PendingEditUser:
		return "edit_user"
	case PendingConfirmUserDelete:
		return "confirm_user_delete"
	case PendingConfirmInviteDelete:
		return "confirm_invite_delete"
	default:
		return "none"
	}
}

// PendingAction is at most one open edit or confirmation. The zero value is
// PendingNone.
type PendingAction struct {
	kind   PendingKind
	user   commerce.User
	invite commerce.Invite
}

// EditingUser opens the edit flow for user.
func EditingUser(user commerce.User) PendingAction {
	return PendingAction{kind: PendingEditUser, user: user}
}

// ConfirmingUserDelete asks to confirm deletion of user.
func ConfirmingUserDelete(user commerce.User) PendingAction {
	return PendingAction{kind: PendingConfirmUserDelete, user: user}
}

// ConfirmingInviteDelete asks to confirm deletion of invite.
func ConfirmingInviteDelete(invite commerce.Invite) PendingAction {
	return PendingAction{kind: PendingConfirmInviteDelete, invite: invite}
}

// Kind returns the action discriminant.
func (p PendingAction) Kind() PendingKind {
	return p.kind
}

// IsNone reports whether nothing is pending.
func (p PendingAction) IsNone() bool {
	return p.kind == PendingNone
}

// User returns the user of an edit or user-delete confirmation.
func (p PendingAction) User() (commerce.User, bool) {
	ok := p.kind == PendingEditUser || p.kind == PendingConfirmUserDelete
	return p.user, ok
}

// Invite returns the invite of an invite-delete confirmation.
func (p PendingAction) Invite() (commerce.Invite, bool) {
	return p.invite, p.kind == PendingConfirmInviteDelete
}

// entityID returns the id of the carried entity, or "".
func (p PendingAction) entityID() (EntityType, string) {
	if user, ok := p.User(); ok {
		return EntityUser, user.ID
	}
	if invite, ok := p.Invite(); ok {
		return EntityInvite, invite.ID
	}
	return "", ""
}
