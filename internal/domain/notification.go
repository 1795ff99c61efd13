package domain

import "time"

// Notification is a one-way notice to a user, created when an admin comments
// on that user's reclamo. Only the read flag ever changes.
type Notification struct {
	ID            string
	UserID        string
	ReclamoID     string
	NumeroReclamo string
	Message       string
	Read          bool
	CreatedAt     time.Time
}
