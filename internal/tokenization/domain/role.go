package domain

// Role identifies an acting principal class. Each role owns an independent DSM
// session and a fixed detokenization policy.
type Role string

// Supported roles.
const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Roles returns all supported roles.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleViewer}
}

// ParseRole converts a string into a Role.
// Returns false for unknown values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(s), true
	default:
		return "", false
	}
}
