package usecase

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/data/repository"
	"smart-parking/internal/data/store"
	"smart-parking/internal/dto/request"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

// ErrSettlementPending marks the deliberate inconsistency window after a
// short tender: the booking is COMPLETED but the slot stays occupied until
// a retried check-out settles the pending payment.
var ErrSettlementPending = errors.New("settlement pending")

type ParkingService interface {
	CheckIn(req *request.CheckInRequest) (entity.Booking, error)
	CheckOut(req *request.CheckOutRequest) (entity.Payment, error)
	Cancel(bookingID string) error

	// Read-only surface, snapshots only
	Metrics() repository.Metrics
	AllSlots() []entity.Slot
	AvailableSlots() []entity.Slot
	SlotsByCategory(category entity.SlotCategory) []entity.Slot
	BookingsByCustomer(customerID string) []entity.Booking
	PaymentsByCustomer(customerID string) []entity.Payment
	AvailabilityLog() []repository.AvailabilitySnapshot
	Snapshot() *store.Snapshot
}

type parkingService struct {
	mu      sync.Mutex // serializes check-in/check-out/cancel over pool + ledgers
	repo    *repository.Repository
	billing BillingService
	log     *zap.Logger

	newBookingID func() string
	now          func() time.Time
}

func NewParkingService(repo *repository.Repository, billing BillingService, log *zap.Logger) ParkingService {
	return &parkingService{
		repo:         repo,
		billing:      billing,
		log:          log.With(zap.String("service", "parking")),
		newBookingID: utils.GenerateBookingID,
		now:          time.Now,
	}
}

// CheckIn allocates a slot and opens an ACTIVE booking for it, as one unit.
// If opening the booking fails after the slot was allocated, the slot is
// released again so occupancy never leaks.
func (s *parkingService) CheckIn(req *request.CheckInRequest) (entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in validation failed", zap.Any("errors", errs))
		return entity.Booking{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	selector := repository.AnySlot()
	switch {
	case req.SlotNumber > 0:
		selector = repository.BySlotNumber(req.SlotNumber)
	case req.PreferredCategory != "":
		selector = repository.ByCategory(entity.SlotCategory(req.PreferredCategory))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, err := s.repo.Slots.Allocate(selector, req.VehicleNumber, req.CustomerID)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("check in vehicle %s: %w", req.VehicleNumber, err)
	}

	booking, err := s.repo.Bookings.Open(s.newBookingID(), req.CustomerID, slot.Number, req.VehicleNumber, s.now())
	if err != nil {
		s.repo.Slots.Release(slot.Number, "booking open failed")
		return entity.Booking{}, fmt.Errorf("check in vehicle %s: %w", req.VehicleNumber, err)
	}

	s.log.Info("Vehicle checked in",
		zap.String("booking_id", booking.ID),
		zap.Int("slot", slot.Number),
		zap.String("category", string(slot.Category)),
		zap.String("vehicle", req.VehicleNumber),
	)

	return booking, nil
}

// CheckOut closes the booking, prices it (minimum one billable hour) and
// settles the payment. The slot is released only once settlement succeeds;
// a short tender leaves the booking in the settlement-pending state and the
// same call can be retried with a larger tender.
func (s *parkingService) CheckOut(req *request.CheckOutRequest) (entity.Payment, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-out validation failed", zap.Any("errors", errs))
		return entity.Payment{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.repo.Bookings.FindByID(req.BookingID)
	if !ok {
		return entity.Payment{}, fmt.Errorf("%w: booking %s not found", repository.ErrInvalidBooking, req.BookingID)
	}

	var payment *entity.Payment
	switch booking.Status {
	case entity.BookingStatusActive:
		closed, err := s.repo.Bookings.Close(req.BookingID, s.now())
		if err != nil {
			return entity.Payment{}, err
		}
		booking = closed

		hours := closed.DurationHours()
		if hours < 1 {
			hours = 1 // minimum charge
		}

		payment = s.billing.NewPayment(closed.ID, hours)
		if err := s.repo.Payments.Add(payment); err != nil {
			return entity.Payment{}, fmt.Errorf("record payment for booking %s: %w", closed.ID, err)
		}

	case entity.BookingStatusCompleted:
		// Retry path of the settlement-pending window.
		payment = s.repo.Payments.FindPendingByBooking(booking.ID)
		if payment == nil {
			return entity.Payment{}, fmt.Errorf("%w: booking %s is already settled", repository.ErrInvalidBooking, booking.ID)
		}

	default:
		return entity.Payment{}, fmt.Errorf("%w: booking %s is %s", repository.ErrInvalidBooking, booking.ID, booking.Status)
	}

	if !s.billing.Settle(payment, req.TenderedAmount) {
		s.log.Warn("Check-out left in settlement-pending state",
			zap.String("booking_id", booking.ID),
			zap.String("payment_id", payment.ID),
			zap.Float64("tendered", req.TenderedAmount),
			zap.Float64("amount", payment.Amount),
		)
		return *payment, fmt.Errorf("%w: tendered %.2f is below fare %.2f for booking %s",
			ErrSettlementPending, req.TenderedAmount, payment.Amount, booking.ID)
	}

	s.repo.Slots.Release(booking.SlotNumber, "vehicle checked out")

	s.log.Info("Vehicle checked out",
		zap.String("booking_id", booking.ID),
		zap.String("payment_id", payment.ID),
		zap.Int("slot", booking.SlotNumber),
		zap.Int("hours", payment.ParkedHours),
		zap.Float64("amount", payment.Amount),
	)

	return *payment, nil
}

// Cancel cancels an ACTIVE booking and releases its slot.
func (s *parkingService) Cancel(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.repo.Bookings.Cancel(bookingID)
	if err != nil {
		return err
	}

	s.repo.Slots.Release(booking.SlotNumber, "booking cancelled by customer")

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.Int("slot", booking.SlotNumber),
	)
	return nil
}

func (s *parkingService) Metrics() repository.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Slots.Metrics()
}

func (s *parkingService) AllSlots() []entity.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Slots.AllSlots()
}

func (s *parkingService) AvailableSlots() []entity.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Slots.AvailableSlots()
}

func (s *parkingService) SlotsByCategory(category entity.SlotCategory) []entity.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Slots.SlotsByCategory(category)
}

func (s *parkingService) BookingsByCustomer(customerID string) []entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Bookings.FindByCustomer(customerID)
}

// PaymentsByCustomer joins payments through the customer's bookings,
// in payment insertion order.
func (s *parkingService) PaymentsByCustomer(customerID string) []entity.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookingIDs := make(map[string]bool)
	for _, booking := range s.repo.Bookings.FindByCustomer(customerID) {
		bookingIDs[booking.ID] = true
	}

	var out []entity.Payment
	for _, payment := range s.repo.Payments.All() {
		if bookingIDs[payment.BookingID] {
			out = append(out, payment)
		}
	}
	return out
}

func (s *parkingService) AvailabilityLog() []repository.AvailabilitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Slots.AvailabilityLog()
}

// Snapshot assembles a copy of the persistable state, safe to serialize
// after the lock is dropped.
func (s *parkingService) Snapshot() *store.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &store.Snapshot{
		Users:    s.repo.Users.All(),
		Bookings: s.repo.Bookings.All(),
		Payments: s.repo.Payments.All(),
	}
}
