// Package storage defines persistence contracts for operator state that must
// survive a redirect: operator sessions and their pending notifications.
package storage
