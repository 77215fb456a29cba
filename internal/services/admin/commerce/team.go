package commerce

import (
	"context"
	"net/http"
)

// ListUsers returns every store user.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var envelope struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoint("users"), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// UpdateUser applies patch to the user and returns the stored user.
func (c *Client) UpdateUser(ctx context.Context, userID string, patch UserPatch) (User, error) {
	var envelope struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, c.endpoint("users", userID), patch, &envelope); err != nil {
		return User{}, err
	}
	return envelope.User, nil
}

// DeleteUser removes a store user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("users", userID), nil, nil)
}

// ListInvites returns every outstanding invite, pending or expired.
func (c *Client) ListInvites(ctx context.Context) ([]Invite, error) {
	var envelope struct {
		Invites []Invite `json:"invites"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoint("invites"), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Invites, nil
}

// DeleteInvite revokes an invite.
func (c *Client) DeleteInvite(ctx context.Context, inviteID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("invites", inviteID), nil, nil)
}

// ResendInvite asks the remote system to send the invitation email again.
func (c *Client) ResendInvite(ctx context.Context, inviteID string) error {
	return c.do(ctx, http.MethodPost, c.endpoint("invites", inviteID, "resend"), nil, nil)
}
