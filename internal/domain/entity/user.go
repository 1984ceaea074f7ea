package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the system. A user may own at most one farm, holds a
// set of roles, and accumulates orders and reviews. PasswordHash is the
// bcrypt digest; the plaintext password never reaches this type.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Username     string     // Display name, not unique.
	Email        string     // Unique login identifier.
	PasswordHash string     // Bcrypt hash of the password.
	FarmID       *uuid.UUID // The farm owned by this user, nil when none.
	Farm         *Farm      // Resolved owned farm, populated on detailed loads.
	Roles        []Role     // Granted roles.
	Orders       []Order    // Orders placed by this user, populated on detailed loads.
	Reviews      []Review   // Reviews authored by this user, populated on detailed loads.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
