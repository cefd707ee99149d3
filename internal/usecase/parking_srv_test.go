package usecase

import (
	"testing"
	"time"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/data/repository"
	"smart-parking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestParking(t *testing.T, totalSlots int) (*parkingService, *repository.Repository) {
	t.Helper()
	log := zap.NewNop()
	repo := repository.NewRepository("LOT-TEST", totalSlots, log)
	billing := NewBillingService(50.0, log)
	svc := NewParkingService(repo, billing, log).(*parkingService)
	return svc, repo
}

func TestCheckInAllocatesLowestSlot(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	booking, err := svc.CheckIn(&request.CheckInRequest{
		CustomerID:    "CUST-001",
		VehicleNumber: "ABC-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, booking.SlotNumber)
	assert.Equal(t, entity.BookingStatusActive, booking.Status)

	metrics := svc.Metrics()
	assert.Equal(t, 1, metrics.OccupiedSlots)
}

func TestCheckInPreferredCategory(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	booking, err := svc.CheckIn(&request.CheckInRequest{
		CustomerID:        "CUST-001",
		VehicleNumber:     "ABC-1234",
		PreferredCategory: "Handicap",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, booking.SlotNumber)
}

func TestCheckInExactSlot(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	booking, err := svc.CheckIn(&request.CheckInRequest{
		CustomerID:    "CUST-001",
		VehicleNumber: "ABC-1234",
		SlotNumber:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, booking.SlotNumber)

	_, err = svc.CheckIn(&request.CheckInRequest{
		CustomerID:    "CUST-002",
		VehicleNumber: "XYZ-5678",
		SlotNumber:    7,
	})
	assert.ErrorIs(t, err, repository.ErrNoAvailableSlot)
}

func TestCheckInValidation(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	_, err := svc.CheckIn(&request.CheckInRequest{VehicleNumber: "ABC-1234"})
	assert.ErrorContains(t, err, "validation failed")

	_, err = svc.CheckIn(&request.CheckInRequest{
		CustomerID:        "CUST-001",
		VehicleNumber:     "ABC-1234",
		PreferredCategory: "Premium",
	})
	assert.ErrorContains(t, err, "validation failed")
}

func TestCheckInFullLot(t *testing.T) {
	svc, _ := newTestParking(t, 2)

	for i := 0; i < 2; i++ {
		_, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
		require.NoError(t, err)
	}

	_, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-002", VehicleNumber: "XYZ-5678"})
	assert.ErrorIs(t, err, repository.ErrNoAvailableSlot)
}

func TestCheckInReleasesSlotWhenBookingOpenFails(t *testing.T) {
	svc, _ := newTestParking(t, 20)
	svc.newBookingID = func() string { return "BOOK-FIXED" }

	_, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	// Same ID again: the ledger rejects it and the allocated slot is returned
	_, err = svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-002", VehicleNumber: "XYZ-5678"})
	require.ErrorIs(t, err, repository.ErrDuplicateBooking)
	assert.Equal(t, 1, svc.Metrics().OccupiedSlots)
}

func TestCheckOutHappyPath(t *testing.T) {
	svc, repo := newTestParking(t, 20)

	checkIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return checkIn }

	booking, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkIn.Add(3 * time.Hour) }
	payment, err := svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 150.0})
	require.NoError(t, err)

	assert.Equal(t, 3, payment.ParkedHours)
	assert.Equal(t, 150.0, payment.Amount)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)

	stored, ok := repo.Bookings.FindByID(booking.ID)
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusCompleted, stored.Status)

	slot, _ := repo.Slots.Slot(booking.SlotNumber)
	assert.False(t, slot.Occupied)

	// A settled booking cannot be cancelled anymore
	assert.ErrorIs(t, svc.Cancel(booking.ID), repository.ErrInvalidBooking)
}

func TestCheckOutMinimumOneHour(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	checkIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return checkIn }

	booking, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	// 10 minutes parked still bills one full hour
	svc.now = func() time.Time { return checkIn.Add(10 * time.Minute) }
	payment, err := svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 50.0})
	require.NoError(t, err)
	assert.Equal(t, 1, payment.ParkedHours)
	assert.Equal(t, 50.0, payment.Amount)
}

func TestCheckOutSettlementPendingAndRetry(t *testing.T) {
	svc, repo := newTestParking(t, 20)

	checkIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return checkIn }

	booking, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkIn.Add(2 * time.Hour) }

	// Short tender: booking completes but the payment and slot stay pending
	payment, err := svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 60.0})
	require.ErrorIs(t, err, ErrSettlementPending)
	assert.Equal(t, 100.0, payment.Amount)
	assert.Equal(t, entity.PaymentStatusPending, payment.Status)

	stored, _ := repo.Bookings.FindByID(booking.ID)
	assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
	slot, _ := repo.Slots.Slot(booking.SlotNumber)
	assert.True(t, slot.Occupied, "slot is held until settlement")

	// Retry with enough money settles the same payment and frees the slot
	settled, err := svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 100.0})
	require.NoError(t, err)
	assert.Equal(t, payment.ID, settled.ID)
	assert.Equal(t, entity.PaymentStatusCompleted, settled.Status)

	slot, _ = repo.Slots.Slot(booking.SlotNumber)
	assert.False(t, slot.Occupied)
	assert.Equal(t, 1, repo.Payments.Count(), "retry must not mint a second payment")

	// Third attempt: nothing pending anymore
	_, err = svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 100.0})
	assert.ErrorIs(t, err, repository.ErrInvalidBooking)
}

func TestCheckOutInvalidBooking(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	_, err := svc.CheckOut(&request.CheckOutRequest{BookingID: "BOOK-404", TenderedAmount: 50.0})
	assert.ErrorIs(t, err, repository.ErrInvalidBooking)
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, repo := newTestParking(t, 20)

	booking, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(booking.ID))

	stored, _ := repo.Bookings.FindByID(booking.ID)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
	slot, _ := repo.Slots.Slot(booking.SlotNumber)
	assert.False(t, slot.Occupied)

	// Cancelled bookings cannot be cancelled or checked out again
	assert.ErrorIs(t, svc.Cancel(booking.ID), repository.ErrInvalidBooking)
	_, err = svc.CheckOut(&request.CheckOutRequest{BookingID: booking.ID, TenderedAmount: 50.0})
	assert.ErrorIs(t, err, repository.ErrInvalidBooking)
}

func TestPaymentsByCustomer(t *testing.T) {
	svc, _ := newTestParking(t, 20)

	checkIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return checkIn }

	first, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)
	other, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-002", VehicleNumber: "XYZ-5678"})
	require.NoError(t, err)

	svc.now = func() time.Time { return checkIn.Add(time.Hour) }
	_, err = svc.CheckOut(&request.CheckOutRequest{BookingID: first.ID, TenderedAmount: 50.0})
	require.NoError(t, err)
	_, err = svc.CheckOut(&request.CheckOutRequest{BookingID: other.ID, TenderedAmount: 50.0})
	require.NoError(t, err)

	payments := svc.PaymentsByCustomer("CUST-001")
	require.Len(t, payments, 1)
	assert.Equal(t, first.ID, payments[0].BookingID)
}

func TestSnapshotCopiesState(t *testing.T) {
	svc, repo := newTestParking(t, 20)

	booking, err := svc.CheckIn(&request.CheckInRequest{CustomerID: "CUST-001", VehicleNumber: "ABC-1234"})
	require.NoError(t, err)

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Bookings, 1)
	assert.Equal(t, booking.ID, snapshot.Bookings[0].ID)

	// Mutating the snapshot must not leak back into the ledger
	snapshot.Bookings[0].Status = entity.BookingStatusCancelled
	stored, _ := repo.Bookings.FindByID(booking.ID)
	assert.Equal(t, entity.BookingStatusActive, stored.Status)
}
