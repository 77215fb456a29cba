package team

import (
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func scenarioUsers() []commerce.User {
	return []commerce.User{{ID: "1", Email: "a@x.com", Role: commerce.RoleAdmin}}
}

func scenarioInvites() []commerce.Invite {
	return []commerce.Invite{{ID: "2", UserEmail: "b@x.com", Token: "abc123", ExpiresAt: testNow.Add(-time.Hour)}}
}

func loadedTable(t *testing.T, opts ...Option) *Table {
	t.Helper()
	table := NewTable(append([]Option{WithClock(fixedClock)}, opts...)...)
	table.Load(1, scenarioUsers(), scenarioInvites())
	return table
}

func recordIDs(records []Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, string(r.Type())+":"+r.ID())
	}
	return ids
}

func assertIDs(t *testing.T, records []Record, want ...string) {
	t.Helper()
	got := recordIDs(records)
	if len(got) != len(want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("records = %v, want %v", got, want)
		}
	}
}

func TestMergeKeepsUsersBeforeInvites(t *testing.T) {
	t.Parallel()

	users := []commerce.User{{ID: "u1"}, {ID: "u2"}}
	invites := []commerce.Invite{{ID: "i1"}, {ID: "i2"}, {ID: "i3"}}
	records := Merge(users, invites)

	assertIDs(t, records, "user:u1", "user:u2", "invite:i1", "invite:i2", "invite:i3")
	if records[1].Key() != "user-1" || records[4].Key() != "invite-2" {
		t.Fatalf("unexpected keys %q %q", records[1].Key(), records[4].Key())
	}
	for _, r := range records {
		_, isUser := r.User()
		_, isInvite := r.Invite()
		if isUser == isInvite {
			t.Fatalf("record %s carries user=%v invite=%v", r.Key(), isUser, isInvite)
		}
		if isUser != (r.Type() == EntityUser) {
			t.Fatalf("record %s tag does not match payload", r.Key())
		}
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		expiresAt time.Time
		want      InviteStatus
	}{
		{name: "past", expiresAt: testNow.Add(-time.Second), want: InviteExpired},
		{name: "future", expiresAt: testNow.Add(time.Second), want: InvitePending},
		{name: "boundary", expiresAt: testNow, want: InvitePending},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := StatusOf(commerce.Invite{ExpiresAt: tc.expiresAt}, testNow); got != tc.want {
				t.Fatalf("status = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFacetCountsMatchFullList(t *testing.T) {
	t.Parallel()

	users := []commerce.User{
		{ID: "u1", Role: commerce.RoleAdmin},
		{ID: "u2", Role: commerce.RoleMember},
		{ID: "u3", Role: commerce.RoleMember},
	}
	invites := []commerce.Invite{
		{ID: "i1", ExpiresAt: testNow.Add(-time.Hour)},
		{ID: "i2", ExpiresAt: testNow.Add(time.Hour)},
		{ID: "i3", ExpiresAt: testNow},
	}
	table := NewTable(WithClock(fixedClock))
	table.Load(7, users, invites)

	want := map[string]int{
		FacetRoleAll:       6,
		FacetRoleMember:    2,
		FacetRoleAdmin:     1,
		FacetRoleNone:      3,
		FacetStatusAll:     6,
		FacetStatusActive:  3,
		FacetStatusPending: 2,
		FacetStatusExpired: 1,
	}
	records := table.Records()
	for _, group := range table.Facets() {
		partition := 0
		for _, option := range group.Options {
			if option.Count != want[option.ID] {
				t.Fatalf("%s count = %d, want %d", option.ID, option.Count, want[option.ID])
			}
			if option.Count != len(Filter(records, option.Predicate)) {
				t.Fatalf("%s count disagrees with its predicate", option.ID)
			}
			if option.ID != FacetRoleAll && option.ID != FacetStatusAll {
				partition += option.Count
			}
		}
		if partition != len(records) {
			t.Fatalf("group %s partitions %d records, want %d", group.ID, partition, len(records))
		}
	}
}

func TestFacetStatusFollowsClock(t *testing.T) {
	t.Parallel()

	now := testNow
	table := NewTable(WithClock(func() time.Time { return now }))
	table.Load(1, nil, []commerce.Invite{{ID: "i1", ExpiresAt: testNow.Add(time.Minute)}})
	if err := table.SelectFacet(FacetStatusExpired); err != nil {
		t.Fatalf("select facet: %v", err)
	}
	if got := len(table.Visible()); got != 0 {
		t.Fatalf("visible = %d before expiry, want 0", got)
	}

	now = testNow.Add(2 * time.Minute)
	assertIDs(t, table.Visible(), "invite:i1")
}

func TestConcreteScenario(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)

	if err := table.SelectFacet(FacetRoleAdmin); err != nil {
		t.Fatalf("select admin: %v", err)
	}
	assertIDs(t, table.Visible(), "user:1")

	if err := table.SelectFacet(FacetStatusExpired); err != nil {
		t.Fatalf("select expired: %v", err)
	}
	assertIDs(t, table.Visible(), "invite:2")

	table.Search("b@x")
	assertIDs(t, table.Visible(), "invite:2")
}

func TestSearch(t *testing.T) {
	t.Parallel()

	users := []commerce.User{
		{ID: "u1", Email: "ada@x.com", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "u2", Email: "bob@y.com"},
	}
	invites := []commerce.Invite{{ID: "i1", UserEmail: "carol@x.com"}}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term shows full list", term: "", want: []string{"user:u1", "user:u2", "invite:i1"}},
		{name: "no match", term: "zzz", want: nil},
		{name: "first name", term: "Ada", want: []string{"user:u1"}},
		{name: "case sensitive", term: "ada", want: []string{"user:u1"}},
		{name: "case sensitive miss", term: "LOVE", want: nil},
		{name: "last name", term: "lace", want: []string{"user:u1"}},
		{name: "email across kinds", term: "@x.com", want: []string{"user:u1", "invite:i1"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			table := NewTable(WithClock(fixedClock))
			table.Load(1, users, invites)
			table.Search(tc.term)
			assertIDs(t, table.Visible(), tc.want...)
		})
	}
}

func TestSearchSkipsAbsentFields(t *testing.T) {
	t.Parallel()

	predicate := SearchPredicate("")
	if predicate(UserRecord(commerce.User{}, 0)) {
		t.Fatal("absent fields must not match")
	}
}

func TestSelectFacetReplacesPriorView(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	table.Search("a@x")
	assertIDs(t, table.Visible(), "user:1")

	if err := table.SelectFacet(FacetRoleNone); err != nil {
		t.Fatalf("select facet: %v", err)
	}
	assertIDs(t, table.Visible(), "invite:2")
	if table.Filters().SearchTerm() != "" {
		t.Fatal("facet selection must clear the search slot under replace policy")
	}

	table.Search("a@x")
	if table.Filters().Facet() != "" {
		t.Fatal("search must clear the facet slot under replace policy")
	}
}

func TestEmptySearchAfterFacetShowsFullList(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	if err := table.SelectFacet(FacetRoleAdmin); err != nil {
		t.Fatalf("select facet: %v", err)
	}
	assertIDs(t, table.Visible(), "user:1")

	table.Search("")
	assertIDs(t, table.Visible(), "user:1", "invite:2")
	if !table.Filters().IsEmpty() {
		t.Fatalf("filters = %+v, want empty", table.Filters())
	}
}

func TestIntersectPolicyCombinesSlots(t *testing.T) {
	t.Parallel()

	users := []commerce.User{
		{ID: "u1", Email: "a@x.com", Role: commerce.RoleAdmin},
		{ID: "u2", Email: "a@y.com", Role: commerce.RoleMember},
	}
	table := NewTable(WithClock(fixedClock), WithPolicy(PolicyIntersect))
	table.Load(1, users, nil)

	table.Search("a@")
	if err := table.SelectFacet(FacetRoleMember); err != nil {
		t.Fatalf("select facet: %v", err)
	}
	assertIDs(t, table.Visible(), "user:u2")

	table.Search("")
	assertIDs(t, table.Visible(), "user:u2")
}

func TestSelectUnknownFacet(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	table.Search("a@")
	if err := table.SelectFacet("role.owner"); !errors.Is(err, ErrUnknownFacet) {
		t.Fatalf("err = %v, want ErrUnknownFacet", err)
	}
	if table.Filters().SearchTerm() != "a@" {
		t.Fatal("unknown facet must leave filters untouched")
	}
}

func TestLoadSameGenerationIsNoop(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	if err := table.SelectFacet(FacetRoleAdmin); err != nil {
		t.Fatalf("select facet: %v", err)
	}

	if table.Load(1, nil, nil) {
		t.Fatal("same generation must not rebuild")
	}
	if len(table.Records()) != 2 || table.Filters().Facet() != FacetRoleAdmin {
		t.Fatal("same generation must keep list and filters")
	}

	if !table.Load(2, scenarioUsers(), nil) {
		t.Fatal("new generation must rebuild")
	}
	if !table.Filters().IsEmpty() {
		t.Fatal("rebuild must reset filters")
	}
	assertIDs(t, table.Visible(), "user:1")
}

func TestVisibleIsSubsetOfCurrentList(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	table.Search("x.com")
	table.Load(2, []commerce.User{{ID: "9", Email: "z@x.com"}}, nil)
	table.Search("x.com")
	assertIDs(t, table.Visible(), "user:9")
}

func TestSelection(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	if !table.Pending().IsNone() {
		t.Fatal("expected no pending action")
	}

	if err := table.EditUser("1"); err != nil {
		t.Fatalf("edit user: %v", err)
	}
	if table.Pending().Kind() != PendingEditUser {
		t.Fatalf("kind = %v", table.Pending().Kind())
	}

	if err := table.ConfirmUserDelete("1"); err != nil {
		t.Fatalf("confirm user delete: %v", err)
	}
	user, ok := table.Pending().User()
	if !ok || user.ID != "1" || table.Pending().Kind() != PendingConfirmUserDelete {
		t.Fatalf("unexpected pending %v", table.Pending().Kind())
	}

	if err := table.ConfirmInviteDelete("2"); err != nil {
		t.Fatalf("confirm invite delete: %v", err)
	}
	if _, ok := table.Pending().User(); ok {
		t.Fatal("invite confirmation must not carry a user")
	}
	invite, ok := table.Pending().Invite()
	if !ok || invite.ID != "2" {
		t.Fatal("expected invite confirmation")
	}

	if err := table.EditUser("2"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
	if table.Pending().Kind() != PendingConfirmInviteDelete {
		t.Fatal("failed selection must leave pending action unchanged")
	}

	table.Dismiss()
	if !table.Pending().IsNone() {
		t.Fatal("dismiss must clear the pending action")
	}
}

func TestLoadDropsPendingActionForRemovedEntity(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	if err := table.ConfirmInviteDelete("2"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	table.Load(2, scenarioUsers(), scenarioInvites())
	if table.Pending().Kind() != PendingConfirmInviteDelete {
		t.Fatal("pending action must survive while its entity exists")
	}
	table.Load(3, scenarioUsers(), nil)
	if !table.Pending().IsNone() {
		t.Fatal("pending action must drop when its entity disappears")
	}
}
