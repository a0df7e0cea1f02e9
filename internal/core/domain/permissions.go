package domain

// Permission keys understood by the back office. The catalog is seeded at
// migration time and never edited through the API.
const (
	PermOrdersView   = "order:view"
	PermOrdersCreate = "order:create"
	PermOrdersUpdate = "order:update"
	PermOrdersDelete = "order:delete"
	PermOrdersNotes  = "order:notes"

	PermRolesView   = "role:view"
	PermRolesCreate = "role:create"
	PermRolesUpdate = "role:update"
	PermRolesDelete = "role:delete"

	PermPermissionsView = "permission:view"
	PermContentManage   = "content:manage"
	PermAddressesManage = "address:manage"
)

// DefaultCatalog returns the seed permission catalog in display order.
func DefaultCatalog() []Permission {
	return []Permission{
		{Key: PermOrdersView, Label: "View orders", Description: "See the order list and order details"},
		{Key: PermOrdersCreate, Label: "Create orders", Description: "Register new client orders"},
		{Key: PermOrdersUpdate, Label: "Update orders", Description: "Edit order details and change order status"},
		{Key: PermOrdersDelete, Label: "Delete orders", Description: "Remove orders permanently"},
		{Key: PermOrdersNotes, Label: "View internal notes", Description: "See internal notes on orders"},
		{Key: PermRolesView, Label: "View roles", Description: "See roles and their permission sets"},
		{Key: PermRolesCreate, Label: "Create roles", Description: "Define new roles"},
		{Key: PermRolesUpdate, Label: "Update roles", Description: "Edit role details and permission sets"},
		{Key: PermRolesDelete, Label: "Delete roles", Description: "Remove roles permanently"},
		{Key: PermPermissionsView, Label: "View permissions", Description: "Browse the permission catalog"},
		{Key: PermContentManage, Label: "Manage content", Description: "Edit about sections and their items"},
		{Key: PermAddressesManage, Label: "Manage addresses", Description: "Maintain customer address books"},
	}
}
