package team

import (
	"testing"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

func TestParseExpressionBlank(t *testing.T) {
	t.Parallel()

	e, err := ParseExpression("   ")
	if err != nil || e != nil {
		t.Fatalf("blank filter = %v, %v; want nil, nil", e, err)
	}
}

func TestParseExpressionRejectsUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := ParseExpression(`nickname = "x"`); err == nil {
		t.Fatal("expected error for undeclared field")
	}
}

func TestExpressionPredicate(t *testing.T) {
	t.Parallel()

	records := Merge(
		[]commerce.User{
			{ID: "u1", Email: "a@x.com", FirstName: "Ada", Role: commerce.RoleAdmin},
			{ID: "u2", Email: "m@x.com", Role: commerce.RoleMember},
		},
		[]commerce.Invite{
			{ID: "i1", UserEmail: "b@x.com", ExpiresAt: testNow.Add(-time.Hour)},
			{ID: "i2", UserEmail: "c@x.com", ExpiresAt: testNow.Add(time.Hour)},
		},
	)

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{name: "entity type", filter: `entity_type = "invite"`, want: []string{"invite:i1", "invite:i2"}},
		{name: "and", filter: `entity_type = "invite" AND status = "expired"`, want: []string{"invite:i1"}},
		{name: "or", filter: `role = "admin" OR status = "pending"`, want: []string{"user:u1", "invite:i2"}},
		{name: "not equals", filter: `status != "active"`, want: []string{"invite:i1", "invite:i2"}},
		{name: "email spans kinds", filter: `email = "b@x.com"`, want: []string{"invite:i1"}},
		{name: "first name", filter: `first_name = "Ada"`, want: []string{"user:u1"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e, err := ParseExpression(tc.filter)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.filter, err)
			}
			assertIDs(t, Filter(records, e.Predicate(fixedClock)), tc.want...)
		})
	}
}

func TestApplyExpressionOccupiesPredicateSlot(t *testing.T) {
	t.Parallel()

	table := loadedTable(t)
	if err := table.SelectFacet(FacetRoleAdmin); err != nil {
		t.Fatalf("select facet: %v", err)
	}
	if err := table.ApplyExpression(`status = "expired"`); err != nil {
		t.Fatalf("apply expression: %v", err)
	}
	if table.Filters().Facet() != "" {
		t.Fatal("expression must replace the facet")
	}
	assertIDs(t, table.Visible(), "invite:2")

	if err := table.ApplyExpression(`status = `); err == nil {
		t.Fatal("expected parse error")
	}
	if table.Filters().Expression().String() != `status = "expired"` {
		t.Fatal("failed parse must keep the prior expression")
	}
}
