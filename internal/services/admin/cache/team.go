package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// TeamClient lists the store's users and invites.
type TeamClient interface {
	ListUsers(ctx context.Context) ([]commerce.User, error)
	ListInvites(ctx context.Context) ([]commerce.Invite, error)
}

// TeamSnapshot is one consistent read of users and invites.
type TeamSnapshot struct {
	Users   []commerce.User
	Invites []commerce.Invite
}

// NewTeam registers the team resource under TeamKey. Users and invites are
// fetched concurrently; either failure fails the snapshot.
func NewTeam(registry *Registry, client TeamClient, ttl time.Duration, opts ...Option) *Resource[TeamSnapshot] {
	fetch := func(ctx context.Context) (TeamSnapshot, error) {
		var snapshot TeamSnapshot
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			users, err := client.ListUsers(groupCtx)
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			snapshot.Users = users
			return nil
		})
		group.Go(func() error {
			invites, err := client.ListInvites(groupCtx)
			if err != nil {
				return fmt.Errorf("list invites: %w", err)
			}
			snapshot.Invites = invites
			return nil
		})
		if err := group.Wait(); err != nil {
			return TeamSnapshot{}, err
		}
		return snapshot, nil
	}
	return Register(registry, NewResource(TeamKey, ttl, fetch, opts...))
}
