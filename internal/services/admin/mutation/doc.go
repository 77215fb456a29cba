// Package mutation runs remote writes for the admin UI with one completion
// contract: notify, then invalidate or navigate, then run the caller's
// continuation on success; notify with a derived message on failure and
// stop there.
package mutation
