package commerce

import "time"

// Role is the permission level of a store user.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User is a store operator account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      Role   `json:"role"`
}

// UserPatch carries the editable user fields. Nil fields are left untouched.
type UserPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// Invite is a pending invitation for a future store user.
type Invite struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store holds the store-level settings the admin UI depends on.
type Store struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// InviteLinkTemplate contains the literal "{invite_token}" placeholder.
	// Nil when the store has not configured one.
	InviteLinkTemplate *string `json:"invite_link_template"`
}

// ProductStatus is the publication state of a product.
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductProposed  ProductStatus = "proposed"
	ProductPublished ProductStatus = "published"
	ProductRejected  ProductStatus = "rejected"
)

// Product is a catalog entry with its variants.
type Product struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle,omitempty"`
	Description string        `json:"description,omitempty"`
	Handle      string        `json:"handle,omitempty"`
	Status      ProductStatus `json:"status"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Variants    []Variant     `json:"variants"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProductPatch carries a partial product update.
type ProductPatch struct {
	Title       *string        `json:"title,omitempty"`
	Subtitle    *string        `json:"subtitle,omitempty"`
	Description *string        `json:"description,omitempty"`
	Handle      *string        `json:"handle,omitempty"`
	Status      *ProductStatus `json:"status,omitempty"`
}

// Variant is a purchasable configuration of a product.
type Variant struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	SKU               string  `json:"sku,omitempty"`
	InventoryQuantity int     `json:"inventory_quantity"`
	Prices            []Price `json:"prices"`
}

// Price is an amount in the smallest currency unit.
type Price struct {
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

// VariantInput is the payload to create a variant.
type VariantInput struct {
	Title             string  `json:"title"`
	SKU               string  `json:"sku,omitempty"`
	InventoryQuantity int     `json:"inventory_quantity"`
	Prices            []Price `json:"prices"`
}

// VariantPatch carries a partial variant update.
type VariantPatch struct {
	Title             *string `json:"title,omitempty"`
	SKU               *string `json:"sku,omitempty"`
	InventoryQuantity *int    `json:"inventory_quantity,omitempty"`
	Prices            []Price `json:"prices,omitempty"`
}
