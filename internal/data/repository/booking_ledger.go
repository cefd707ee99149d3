package repository

import (
	"errors"
	"fmt"
	"time"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

var (
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrInvalidBooking   = errors.New("invalid booking")
)

// BookingLedger tracks booking lifecycle: ACTIVE -> COMPLETED or CANCELLED.
// The ledger owns booking state only; releasing the slot is the caller's
// job so the pool and the ledger stay independently consistent.
type BookingLedger struct {
	bookings []*entity.Booking // insertion order
	byID     map[string]*entity.Booking
	log      *zap.Logger
}

func NewBookingLedger(log *zap.Logger) *BookingLedger {
	return &BookingLedger{
		byID: make(map[string]*entity.Booking),
		log:  log.With(zap.String("repository", "booking_ledger")),
	}
}

// Open creates an ACTIVE booking bound to an already-allocated slot.
func (l *BookingLedger) Open(id, customerID string, slotNumber int, vehicleNumber string, checkIn time.Time) (entity.Booking, error) {
	if _, exists := l.byID[id]; exists {
		return entity.Booking{}, fmt.Errorf("%w: booking %s already exists", ErrDuplicateBooking, id)
	}

	booking := &entity.Booking{
		ID:            id,
		CustomerID:    customerID,
		SlotNumber:    slotNumber,
		VehicleNumber: vehicleNumber,
		CheckInTime:   checkIn,
		Status:        entity.BookingStatusActive,
		UpdatedAt:     checkIn,
	}
	l.bookings = append(l.bookings, booking)
	l.byID[id] = booking

	l.log.Info("Booking opened",
		zap.String("booking_id", id),
		zap.String("customer_id", customerID),
		zap.Int("slot", slotNumber),
		zap.String("vehicle", vehicleNumber),
	)

	return *booking, nil
}

// Close completes an ACTIVE booking and returns the record so the caller
// can price it and release the slot.
func (l *BookingLedger) Close(id string, checkOut time.Time) (entity.Booking, error) {
	booking, err := l.active(id)
	if err != nil {
		return entity.Booking{}, err
	}

	t := checkOut
	booking.CheckOutTime = &t
	booking.Status = entity.BookingStatusCompleted
	booking.UpdatedAt = checkOut

	l.log.Info("Booking closed",
		zap.String("booking_id", id),
		zap.Int("slot", booking.SlotNumber),
		zap.Int("duration_hours", booking.DurationHours()),
	)

	return *booking, nil
}

// Cancel marks an ACTIVE booking CANCELLED. The caller releases the slot.
func (l *BookingLedger) Cancel(id string) (entity.Booking, error) {
	booking, err := l.active(id)
	if err != nil {
		return entity.Booking{}, err
	}

	booking.Status = entity.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	l.log.Info("Booking cancelled",
		zap.String("booking_id", id),
		zap.Int("slot", booking.SlotNumber),
	)

	return *booking, nil
}

func (l *BookingLedger) FindByID(id string) (entity.Booking, bool) {
	booking, ok := l.byID[id]
	if !ok {
		return entity.Booking{}, false
	}
	return *booking, true
}

// FindByCustomer returns the customer's bookings in insertion order.
func (l *BookingLedger) FindByCustomer(customerID string) []entity.Booking {
	var out []entity.Booking
	for _, booking := range l.bookings {
		if booking.CustomerID == customerID {
			out = append(out, *booking)
		}
	}
	return out
}

func (l *BookingLedger) All() []entity.Booking {
	out := make([]entity.Booking, len(l.bookings))
	for i, booking := range l.bookings {
		out[i] = *booking
	}
	return out
}

func (l *BookingLedger) CountByStatus(status entity.BookingStatus) int {
	count := 0
	for _, booking := range l.bookings {
		if booking.Status == status {
			count++
		}
	}
	return count
}

func (l *BookingLedger) Count() int {
	return len(l.bookings)
}

// Restore re-seeds the ledger from a persisted snapshot.
func (l *BookingLedger) Restore(bookings []entity.Booking) error {
	for _, booking := range bookings {
		if _, exists := l.byID[booking.ID]; exists {
			return fmt.Errorf("%w: booking %s already exists", ErrDuplicateBooking, booking.ID)
		}
		b := booking
		l.bookings = append(l.bookings, &b)
		l.byID[b.ID] = &b
	}
	return nil
}

func (l *BookingLedger) active(id string) (*entity.Booking, error) {
	booking, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: booking %s not found", ErrInvalidBooking, id)
	}
	if booking.Status != entity.BookingStatusActive {
		return nil, fmt.Errorf("%w: booking %s is %s, not ACTIVE", ErrInvalidBooking, id, booking.Status)
	}
	return booking, nil
}
