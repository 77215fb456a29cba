package team

import (
	"strconv"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// EntityType discriminates the payload of a Record.
type EntityType string

const (
	EntityUser   EntityType = "user"
	EntityInvite EntityType = "invite"
)

// Record is one row of the merged team list: either a user or an invite.
//
// The zero Record carries neither and is never produced by this package.
type Record struct {
	kind   EntityType
	user   commerce.User
	invite commerce.Invite
	key    string
}

// UserRecord tags a user at position index of its source collection.
func UserRecord(user commerce.User, index int) Record {
	return Record{kind: EntityUser, user: user, key: "user-" + strconv.Itoa(index)}
}

// InviteRecord tags an invite at position index of its source collection.
func InviteRecord(invite commerce.Invite, index int) Record {
	return Record{kind: EntityInvite, invite: invite, key: "invite-" + strconv.Itoa(index)}
}

// Type returns the record discriminant.
func (r Record) Type() EntityType {
	return r.kind
}

// Key returns the stable render key ("user-0", "invite-3", ...).
func (r Record) Key() string {
	return r.key
}

// User returns the user payload when the record is a user.
func (r Record) User() (commerce.User, bool) {
	return r.user, r.kind == EntityUser
}

// Invite returns the invite payload when the record is an invite.
func (r Record) Invite() (commerce.Invite, bool) {
	return r.invite, r.kind == EntityInvite
}

// ID returns the remote identifier of the wrapped entity.
func (r Record) ID() string {
	return Visit(r,
		func(u commerce.User) string { return u.ID },
		func(i commerce.Invite) string { return i.ID },
	)
}

// Visit dispatches on the record variant. Every caller handles both shapes,
// so adding a variant is a compile error at each call site.
func Visit[T any](r Record, onUser func(commerce.User) T, onInvite func(commerce.Invite) T) T {
	switch r.kind {
	case EntityUser:
		return onUser(r.user)
	case EntityInvite:
		return onInvite(r.invite)
	default:
		var zero T
		return zero
	}
}

// Merge concatenates users then invites, preserving each input order.
func Merge(users []commerce.User, invites []commerce.Invite) []Record {
	records := make([]Record, 0, len(users)+len(invites))
	for i, user := range users {
		records = append(records, UserRecord(user, i))
	}
	for i, invite := range invites {
		records = append(records, InviteRecord(invite, i))
	}
	return records
}
