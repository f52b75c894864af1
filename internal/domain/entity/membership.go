package entity

import "time"

// Roles válidos para Membership.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// ValidRole indica si el string es uno de los tres roles del sistema.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleManager || role == RoleViewer
}

// Membership vincula un usuario con una organización y exactamente un rol.
// Un usuario tiene como máximo un rol por organización (UNIQUE user_id, org_id).
type Membership struct {
	ID        string
	UserID    string
	OrgID     string
	Role      string // owner, manager, viewer
	CreatedAt time.Time
}
