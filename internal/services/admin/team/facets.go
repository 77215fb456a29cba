package team

import (
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// Predicate reports whether a record belongs to a filtered view.
type Predicate func(Record) bool

// FacetGroup is a named set of facet options (Role, Status).
type FacetGroup struct {
	ID string
	// Title is a localization key.
	Title   string
	Options []FacetOption
}

// FacetOption is one selectable facet with its match count over the full list.
type FacetOption struct {
	ID string
	// Title is a localization key.
	Title     string
	Count     int
	Predicate Predicate
}

// Facet option identifiers accepted by Table.SelectFacet.
const (
	FacetRoleAll       = "role.all"
	FacetRoleMember    = "role.member"
	FacetRoleAdmin     = "role.admin"
	FacetRoleNone      = "role.none"
	FacetStatusAll     = "status.all"
	FacetStatusActive  = "status.active"
	FacetStatusPending = "status.pending"
	FacetStatusExpired = "status.expired"
)

type facetDef struct {
	id        string
	title     string
	predicate func(clock func() time.Time) Predicate
}

type facetGroupDef struct {
	id      string
	title   string
	options []facetDef
}

var facetGroups = []facetGroupDef{
	{
		id:    "role",
		title: "team.facet.role",
		options: []facetDef{
			{id: FacetRoleAll, title: "team.facet.role.all", predicate: always},
			{id: FacetRoleMember, title: "team.facet.role.member", predicate: userWithRole(commerce.RoleMember)},
			{id: FacetRoleAdmin, title: "team.facet.role.admin", predicate: userWithRole(commerce.RoleAdmin)},
			{id: FacetRoleNone, title: "team.facet.role.none", predicate: ofType(EntityInvite)},
		},
	},
	{
		id:    "status",
		title: "team.facet.status",
		options: []facetDef{
			{id: FacetStatusAll, title: "team.facet.status.all", predicate: always},
			{id: FacetStatusActive, title: "team.facet.status.active", predicate: ofType(EntityUser)},
			{id: FacetStatusPending, title: "team.facet.status.pending", predicate: inviteWithStatus(InvitePending)},
			{id: FacetStatusExpired, title: "team.facet.status.expired", predicate: inviteWithStatus(InviteExpired)},
		},
	},
}

func always(func() time.Time) Predicate {
	return func(Record) bool { return true }
}

func ofType(kind EntityType) func(func() time.Time) Predicate {
	return func(func() time.Time) Predicate {
		return func(r Record) bool { return r.Type() == kind }
	}
}

func userWithRole(role commerce.Role) func(func() time.Time) Predicate {
	return func(func() time.Time) Predicate {
		return func(r Record) bool {
			user, ok := r.User()
			return ok && user.Role == role
		}
	}
}

// inviteWithStatus reads the clock on every evaluation; status is never
// stored on the record.
func inviteWithStatus(status InviteStatus) func(func() time.Time) Predicate {
	return func(clock func() time.Time) Predicate {
		return func(r Record) bool {
			invite, ok := r.Invite()
			return ok && StatusOf(invite, clock()) == status
		}
	}
}

// Facets derives facet groups over the full record list. Counts are taken at a
// single instant so that pending and expired always partition the invites.
func Facets(records []Record, clock func() time.Time) []FacetGroup {
	if clock == nil {
		clock = time.Now
	}
	at := clock()
	frozen := func() time.Time { return at }

	groups := make([]FacetGroup, 0, len(facetGroups))
	for _, def := range facetGroups {
		group := FacetGroup{ID: def.id, Title: def.title}
		for _, opt := range def.options {
			group.Options = append(group.Options, FacetOption{
				ID:        opt.id,
				Title:     opt.title,
				Count:     Count(records, opt.predicate(frozen)),
				Predicate: opt.predicate(clock),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// facetPredicate returns the live predicate for a facet option id.
func facetPredicate(id string, clock func() time.Time) (Predicate, bool) {
	for _, group := range facetGroups {
		for _, opt := range group.options {
			if opt.id == id {
				return opt.predicate(clock), true
			}
		}
	}
	return nil, false
}

// Count returns how many records satisfy predicate.
func Count(records []Record, predicate Predicate) int {
	count := 0
	for _, record := range records {
		if predicate(record) {
			count++
		}
	}
	return count
}

// Filter returns the records satisfying predicate, in order.
func Filter(records []Record, predicate Predicate) []Record {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if predicate(record) {
			out = append(out, record)
		}
	}
	return out
}
