// Package admin serves the store administration UI.
//
// The team page merges store users and pending invites into one filterable
// table; product pages edit products and their variants. Writes go through
// the mutation orchestrators, which notify the operator, refetch the cached
// remote data, and then continue the UI flow.
package admin
