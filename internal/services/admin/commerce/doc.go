// Package commerce is a client for the remote store administration API.
//
// It owns the read-only projections of remote entities (users, invites,
// products, variants, store settings) and translates non-2xx responses into
// APIError values so callers can surface the remote message to operators.
package commerce
