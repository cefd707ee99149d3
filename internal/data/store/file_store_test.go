package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"smart-parking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStoreLoadEmptyDirectory(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	snapshot, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot.Users)
	assert.Empty(t, snapshot.Bookings)
	assert.Empty(t, snapshot.Payments)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	checkIn := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(2 * time.Hour)

	snapshot := &Snapshot{
		Users: []entity.User{
			{ID: "CUST-001", Username: "alice", PasswordHash: "hash", FullName: "Alice Johnson", Role: entity.RoleCustomer, VehicleNumber: "ABC-1234", VehicleType: "Car"},
		},
		Bookings: []entity.Booking{
			{ID: "BOOK-1", CustomerID: "CUST-001", SlotNumber: 2, VehicleNumber: "ABC-1234", CheckInTime: checkIn, CheckOutTime: &checkOut, Status: entity.BookingStatusCompleted, UpdatedAt: checkOut},
		},
		Payments: []entity.Payment{
			{ID: "PAY-1", BookingID: "BOOK-1", ParkedHours: 2, Amount: 100, Status: entity.PaymentStatusPending},
		},
	}

	ctx := context.Background()
	require.NoError(t, fs.Save(ctx, snapshot))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Users, loaded.Users)
	assert.Equal(t, snapshot.Bookings, loaded.Bookings)
	assert.Equal(t, snapshot.Payments, loaded.Payments)
}

func TestFileStoreSaveEmptyWritesArrays(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, fs.Save(context.Background(), &Snapshot{}))

	for _, name := range []string{"users.json", "bookings.json", "payments.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data), "%s should hold an empty array, not null", name)
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.json"), []byte("{not json"), 0644))

	_, err = fs.Load(context.Background())
	assert.ErrorContains(t, err, "decode")
}
