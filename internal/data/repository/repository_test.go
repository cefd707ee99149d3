package repository

import (
	"testing"
	"time"

	"smart-parking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryRestoreRebuildsOccupancy(t *testing.T) {
	repo := NewRepository("LOT-TEST", 10, zap.NewNop())
	checkIn := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(2 * time.Hour)
	paidAt := checkOut.Add(time.Minute)

	users := []entity.User{
		{ID: "CUST-001", Username: "customer1", Role: entity.RoleCustomer, VehicleNumber: "ABC-1234"},
	}
	bookings := []entity.Booking{
		// Still parked
		{ID: "BOOK-1", CustomerID: "CUST-001", SlotNumber: 2, VehicleNumber: "ABC-1234", CheckInTime: checkIn, Status: entity.BookingStatusActive},
		// Checked out and paid: slot free
		{ID: "BOOK-2", CustomerID: "CUST-001", SlotNumber: 3, VehicleNumber: "ABC-1234", CheckInTime: checkIn, CheckOutTime: &checkOut, Status: entity.BookingStatusCompleted},
		// Checked out, payment still pending: slot stays held
		{ID: "BOOK-3", CustomerID: "CUST-001", SlotNumber: 4, VehicleNumber: "ABC-1234", CheckInTime: checkIn, CheckOutTime: &checkOut, Status: entity.BookingStatusCompleted},
		// Cancelled: slot free
		{ID: "BOOK-4", CustomerID: "CUST-001", SlotNumber: 5, VehicleNumber: "ABC-1234", CheckInTime: checkIn, Status: entity.BookingStatusCancelled},
	}
	payments := []entity.Payment{
		{ID: "PAY-1", BookingID: "BOOK-2", ParkedHours: 2, Amount: 100, Status: entity.PaymentStatusCompleted, PaidAt: &paidAt},
		{ID: "PAY-2", BookingID: "BOOK-3", ParkedHours: 2, Amount: 100, Status: entity.PaymentStatusPending},
	}

	require.NoError(t, repo.Restore(users, bookings, payments))

	metrics := repo.Slots.Metrics()
	assert.Equal(t, 2, metrics.OccupiedSlots)

	slot2, _ := repo.Slots.Slot(2)
	assert.True(t, slot2.Occupied)
	assert.Equal(t, "ABC-1234", slot2.VehicleNumber)

	slot3, _ := repo.Slots.Slot(3)
	assert.False(t, slot3.Occupied)

	slot4, _ := repo.Slots.Slot(4)
	assert.True(t, slot4.Occupied, "settlement-pending booking keeps its slot")

	slot5, _ := repo.Slots.Slot(5)
	assert.False(t, slot5.Occupied)

	assert.Equal(t, 1, repo.Users.Count())
	assert.Equal(t, 4, repo.Bookings.Count())
	assert.Equal(t, 2, repo.Payments.Count())
}

func TestRepositoryRestoreConflictingOccupancy(t *testing.T) {
	repo := NewRepository("LOT-TEST", 10, zap.NewNop())
	checkIn := time.Now()

	err := repo.Restore(nil, []entity.Booking{
		{ID: "BOOK-1", CustomerID: "CUST-001", SlotNumber: 2, CheckInTime: checkIn, Status: entity.BookingStatusActive},
		{ID: "BOOK-2", CustomerID: "CUST-002", SlotNumber: 2, CheckInTime: checkIn, Status: entity.BookingStatusActive},
	}, nil)
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
}

func TestPaymentLedgerPendingLookup(t *testing.T) {
	ledger := NewPaymentLedger(zap.NewNop())

	pending := &entity.Payment{ID: "PAY-1", BookingID: "BOOK-1", Amount: 50, Status: entity.PaymentStatusPending}
	require.NoError(t, ledger.Add(pending))
	assert.Error(t, ledger.Add(pending), "duplicate payment ID must be rejected")

	// Lookup returns the live record; settling through it is visible
	found := ledger.FindPendingByBooking("BOOK-1")
	require.NotNil(t, found)
	found.Status = entity.PaymentStatusCompleted

	assert.Nil(t, ledger.FindPendingByBooking("BOOK-1"))
	stored, ok := ledger.FindByID("PAY-1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentStatusCompleted, stored.Status)
}

func TestUserDirectory(t *testing.T) {
	dir := NewUserDirectory(zap.NewNop())

	require.NoError(t, dir.Add(entity.User{ID: "CUST-001", Username: "alice", Role: entity.RoleCustomer}))
	err := dir.Add(entity.User{ID: "CUST-002", Username: "alice", Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	user, ok := dir.FindByUsername("alice")
	require.True(t, ok)
	assert.Equal(t, "CUST-001", user.ID)

	_, ok = dir.FindByUsername("bob")
	assert.False(t, ok)

	byID, ok := dir.FindByID("CUST-001")
	require.True(t, ok)
	assert.Equal(t, "alice", byID.Username)
}
