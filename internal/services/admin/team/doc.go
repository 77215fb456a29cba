// Package team builds the operator-facing team list.
//
// Store users and outstanding invites are two differently shaped remote
// collections; this package merges them into one ordered list of tagged
// records, derives facet counts and predicates over that list, applies free
// text search, and tracks which row action (edit, confirm delete) is pending.
// It performs no remote calls.
package team
