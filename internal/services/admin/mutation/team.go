package mutation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/storeadmin/internal/services/admin/cache"
	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// TeamClient performs user and invite writes.
type TeamClient interface {
	UpdateUser(ctx context.Context, userID string, patch commerce.UserPatch) (commerce.User, error)
	DeleteUser(ctx context.Context, userID string) error
	DeleteInvite(ctx context.Context, inviteID string) error
	ResendInvite(ctx context.Context, inviteID string) error
}

// TeamInFlight reports which team slots are running.
type TeamInFlight struct {
	UpdatingUser    bool
	DeletingUser    bool
	DeletingInvite  bool
	ResendingInvite bool
}

// TeamActions runs writes against store users and invites. Every success
// refetches the team before Then runs.
type TeamActions struct {
	client TeamClient
	runner
}

// NewTeamActions builds the team orchestrator.
func NewTeamActions(client TeamClient, deps Deps) *TeamActions {
	return &TeamActions{client: client, runner: newRunner(deps)}
}

// InFlight snapshots the slot flags.
func (a *TeamActions) InFlight() TeamInFlight {
	return TeamInFlight{
		UpdatingUser:    a.slots.inFlight(SlotUpdatingUser),
		DeletingUser:    a.slots.inFlight(SlotDeletingUser),
		DeletingInvite:  a.slots.inFlight(SlotDeletingInvite),
		ResendingInvite: a.slots.inFlight(SlotResendingInvite),
	}
}

func teamOp(name string, slot Slot, successKey string, attr attribute.KeyValue) operation {
	return operation{
		name:       name,
		slot:       slot,
		successKey: successKey,
		invalidate: cache.TeamKey,
		attributes: []attribute.KeyValue{attr},
	}
}

// UpdateUser saves the edit-user form.
func (a *TeamActions) UpdateUser(ctx context.Context, userID string, patch commerce.UserPatch, opts ...CallOption) error {
	op := teamOp("update_user", SlotUpdatingUser, "team.user.updated", attribute.String("user.id", userID))
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.UpdateUser(ctx, userID, patch)
		return err
	}, opts)
}

// DeleteUser removes a store user.
func (a *TeamActions) DeleteUser(ctx context.Context, userID string, opts ...CallOption) error {
	op := teamOp("delete_user", SlotDeletingUser, "team.user.deleted", attribute.String("user.id", userID))
	return a.run(ctx, op, func(ctx context.Context) error {
		return a.client.DeleteUser(ctx, userID)
	}, opts)
}

// DeleteInvite revokes an invite.
func (a *TeamActions) DeleteInvite(ctx context.Context, inviteID string, opts ...CallOption) error {
	op := teamOp("delete_invite", SlotDeletingInvite, "team.invite.deleted", attribute.String("invite.id", inviteID))
	return a.run(ctx, op, func(ctx context.Context) error {
		return a.client.DeleteInvite(ctx, inviteID)
	}, opts)
}

// ResendInvite sends the invitation email again.
func (a *TeamActions) ResendInvite(ctx context.Context, inviteID string, opts ...CallOption) error {
	op := teamOp("resend_invite", SlotResendingInvite, "team.invite.resent", attribute.String("invite.id", inviteID))
	return a.run(ctx, op, func(ctx context.Context) error {
		return a.client.ResendInvite(ctx, inviteID)
	}, opts)
}
