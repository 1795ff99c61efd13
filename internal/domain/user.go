package domain

import "time"

// Role enumerates the two account roles. Role checks switch exhaustively on
// these values; anything else is rejected at the boundary.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleSubmitter Role = "EMISOR_RECLAMO"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSubmitter:
		return true
	}
	return false
}

// User is an account that files or administers reclamos. Submitters carry an
// assigned line that scopes everything they can see.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Role          Role
	LineaAsignada *string
	IsActive      bool
	CreatedAt     time.Time
}
