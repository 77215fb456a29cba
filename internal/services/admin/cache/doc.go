// Package cache holds the admin UI's read models of remote resources. Entries
// expire after a TTL and can be invalidated by key, which refetches them
// before returning.
package cache
