package repository

import (
	"fmt"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

// Repository groups all in-memory state owners. One instance per process;
// the usecase layer serializes access to it.
type Repository struct {
	Slots    *SlotPool
	Bookings *BookingLedger
	Payments *PaymentLedger
	Users    *UserDirectory
}

func NewRepository(lotID string, totalSlots int, log *zap.Logger) *Repository {
	return &Repository{
		Slots:    NewSlotPool(lotID, totalSlots, log),
		Bookings: NewBookingLedger(log),
		Payments: NewPaymentLedger(log),
		Users:    NewUserDirectory(log),
	}
}

// Restore rebuilds the full in-memory state from a persisted snapshot.
// Occupancy is not stored directly; it is re-derived by re-allocating the
// slot of every booking that still holds one: ACTIVE bookings, and
// COMPLETED bookings whose payment is still PENDING (the settlement-pending
// window survives a restart).
func (r *Repository) Restore(users []entity.User, bookings []entity.Booking, payments []entity.Payment) error {
	if err := r.Users.Restore(users); err != nil {
		return fmt.Errorf("restore users: %w", err)
	}
	if err := r.Bookings.Restore(bookings); err != nil {
		return fmt.Errorf("restore bookings: %w", err)
	}
	if err := r.Payments.Restore(payments); err != nil {
		return fmt.Errorf("restore payments: %w", err)
	}

	for _, booking := range bookings {
		holdsSlot := booking.Status == entity.BookingStatusActive
		if booking.Status == entity.BookingStatusCompleted {
			holdsSlot = r.Payments.FindPendingByBooking(booking.ID) != nil
		}
		if !holdsSlot {
			continue
		}
		if _, err := r.Slots.Allocate(BySlotNumber(booking.SlotNumber), booking.VehicleNumber, booking.CustomerID); err != nil {
			return fmt.Errorf("restore occupancy for booking %s: %w", booking.ID, err)
		}
	}
	return nil
}
