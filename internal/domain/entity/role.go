package entity

import (
	"github.com/google/uuid"
)

// Well-known role names seeded by operators. Role names are unique but
// otherwise free-form; these constants cover the ones the router cares about.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
	RoleGuest = "GUEST"
)

// Role names a capability grant. Roles relate many-to-many with users.
type Role struct {
	ID   uuid.UUID // The unique identifier for the role.
	Name string    // Unique role name, e.g. "ADMIN".
}

// RoleNames extracts the name of each role, in order. The result feeds JWT
// role claims, which carry plain strings.
func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.Name
	}

	return names
}
