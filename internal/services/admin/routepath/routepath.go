package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Team        = "/team"
	TeamTable   = "/team/table"
	TeamDismiss = "/team/dismiss"
	TeamPrefix  = "/team/"
)

const (
	Products       = "/products"
	ProductsPrefix = "/products/"
)

func TeamUser(userID string) string {
	return Team + "/users/" + escapeSegment(userID)
}

func TeamUserEdit(userID string) string {
	return TeamUser(userID) + "/edit"
}

func TeamUserDelete(userID string) string {
	return TeamUser(userID) + "/delete"
}

func TeamInvite(inviteID string) string {
	return Team + "/invites/" + escapeSegment(inviteID)
}

func TeamInviteDelete(inviteID string) string {
	return TeamInvite(inviteID) + "/delete"
}

func TeamInviteResend(inviteID string) string {
	return TeamInvite(inviteID) + "/resend"
}

func TeamInviteCopyLink(inviteID string) string {
	return TeamInvite(inviteID) + "/copy-link"
}

func Product(productID string) string {
	return Products + "/" + escapeSegment(productID)
}

func ProductStatus(productID string) string {
	return Product(productID) + "/status"
}

func ProductDelete(productID string) string {
	return Product(productID) + "/delete"
}

func ProductVariants(productID string) string {
	return Product(productID) + "/variants"
}

func ProductVariant(productID string, variantID string) string {
	return ProductVariants(productID) + "/" + escapeSegment(variantID)
}

func ProductVariantDelete(productID string, variantID string) string {
	return ProductVariant(productID, variantID) + "/delete"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
