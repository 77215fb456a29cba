package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if Team != "/team" {
		t.Fatalf("Team = %q", Team)
	}
	if TeamTable != "/team/table" {
		t.Fatalf("TeamTable = %q", TeamTable)
	}
	if Products != "/products" {
		t.Fatalf("Products = %q", Products)
	}
}

func TestTeamBuilders(t *testing.T) {
	t.Parallel()

	if got := TeamUserEdit("usr-1"); got != "/team/users/usr-1/edit" {
		t.Fatalf("TeamUserEdit = %q", got)
	}
	if got := TeamUserDelete("usr-1"); got != "/team/users/usr-1/delete" {
		t.Fatalf("TeamUserDelete = %q", got)
	}
	if got := TeamInviteResend("inv-1"); got != "/team/invites/inv-1/resend" {
		t.Fatalf("TeamInviteResend = %q", got)
	}
	if got := TeamInviteCopyLink("inv-1"); got != "/team/invites/inv-1/copy-link" {
		t.Fatalf("TeamInviteCopyLink = %q", got)
	}
	if got := TeamInviteDelete("inv-1"); got != "/team/invites/inv-1/delete" {
		t.Fatalf("TeamInviteDelete = %q", got)
	}
}

func TestProductBuilders(t *testing.T) {
	t.Parallel()

	if got := ProductStatus("prod-1"); got != "/products/prod-1/status" {
		t.Fatalf("ProductStatus = %q", got)
	}
	if got := ProductVariantDelete("prod-1", "var-1"); got != "/products/prod-1/variants/var-1/delete" {
		t.Fatalf("ProductVariantDelete = %q", got)
	}
}

func TestBuildersEscapeSegments(t *testing.T) {
	t.Parallel()

	if got := Product(" a/b "); got != "/products/a%2Fb" {
		t.Fatalf("Product = %q", got)
	}
}
