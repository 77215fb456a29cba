package team

import (
	"testing"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

func TestRowsCarryColumnsAndActions(t *testing.T) {
	t.Parallel()

	users := []commerce.User{{ID: "u1", Email: "ada@x.com", FirstName: "ada", LastName: "Lovelace", Role: commerce.RoleAdmin}}
	invites := []commerce.Invite{{ID: "i1", UserEmail: "b@x.com", ExpiresAt: testNow.Add(-time.Hour)}}
	table := NewTable(WithClock(fixedClock))
	table.Load(1, users, invites)

	rows := table.Rows(RowContext{SettingsLoading: true})
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	user := rows[0]
	if user.Name != "ada Lovelace" || user.Initials != "AL" || user.RoleLabel != "team.role.admin" || user.Status != "" {
		t.Fatalf("unexpected user row %+v", user)
	}
	if kinds(user.Actions) != "edit,delete" || !user.Actions[1].Danger {
		t.Fatalf("unexpected user actions %+v", user.Actions)
	}

	invite := rows[1]
	if invite.Name != "b@x.com" || invite.Initials != "B" || invite.RoleLabel != "" || invite.Status != InviteExpired {
		t.Fatalf("unexpected invite row %+v", invite)
	}
	if kinds(invite.Actions) != "resend,copy-link,delete" {
		t.Fatalf("unexpected invite actions %+v", invite.Actions)
	}
	if !invite.Actions[1].Disabled {
		t.Fatal("copy link must be disabled while settings load")
	}

	rows = table.Rows(RowContext{})
	if rows[1].Actions[1].Disabled {
		t.Fatal("copy link must be enabled once settings load")
	}
}

func TestDisplayNameFallsBackToEmail(t *testing.T) {
	t.Parallel()

	rows := BuildRows([]Record{UserRecord(commerce.User{ID: "u1", Email: "z@x.com"}, 0)}, RowContext{}, testNow)
	if rows[0].Name != "z@x.com" || rows[0].Initials != "Z" {
		t.Fatalf("unexpected row %+v", rows[0])
	}
}

func TestInviteLink(t *testing.T) {
	t.Parallel()

	template := "https://shop.example.com/join/{invite_token}?again={invite_token}"
	tests := []struct {
		name     string
		template *string
		origin   string
		want     string
	}{
		{
			name:   "default template",
			origin: "https://admin.example.com",
			want:   "https://admin.example.com/invite?token=abc123",
		},
		{
			name:   "origin trailing slash",
			origin: "https://admin.example.com/",
			want:   "https://admin.example.com/invite?token=abc123",
		},
		{
			name:     "store template replaces first placeholder",
			template: &template,
			origin:   "https://admin.example.com",
			want:     "https://shop.example.com/join/abc123?again={invite_token}",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := InviteLink(tc.template, tc.origin, "abc123"); got != tc.want {
				t.Fatalf("link = %q, want %q", got, tc.want)
			}
		})
	}
}

func kinds(actions []Action) string {
	out := ""
	for i, a := range actions {
		if i > 0 {
			out += ","
		}
		out += string(a.Kind)
	}
	return out
}
