package domain

import "time"

// Accommodation is a listing offered by a host. HostID references a User but
// the reference is not enforced: a listing survives the deletion of its host.
type Accommodation struct {
	ID          string
	Name        string
	Description string
	MaxGuests   int
	City        string
	HostID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
