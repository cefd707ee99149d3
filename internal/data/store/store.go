package store

import (
	"context"

	"smart-parking/internal/data/entity"
)

// Snapshot carries everything needed to round-trip system state between
// process runs. Slot occupancy is not part of it: the repository re-derives
// it from the bookings on load.
type Snapshot struct {
	Users    []entity.User    `json:"users"`
	Bookings []entity.Booking `json:"bookings"`
	Payments []entity.Payment `json:"payments"`
}

// Store is the persistence collaborator. Load runs at startup, Save at
// shutdown; both operate on copies, outside the controller lock.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}
