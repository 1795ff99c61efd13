package domain

import "time"

// Invitation is an admin-issued, single-use account offer. The password hash
// is computed at creation time so accepting never handles the plaintext.
type Invitation struct {
	ID            string
	Token         string
	Username      string
	Email         string
	PasswordHash  string
	LineaAsignada *string
	CreatedBy     string
	Accepted      bool
	CreatedAt     time.Time
}
