package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingDurationHours(t *testing.T) {
	checkIn := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	booking := Booking{ID: "BOOK-1", CheckInTime: checkIn, Status: BookingStatusActive}

	// Open booking has no duration yet
	assert.Equal(t, 0, booking.DurationHours())

	// Partial hours are truncated
	assert.Equal(t, 2, booking.DurationHoursAt(checkIn.Add(2*time.Hour+45*time.Minute)))
	assert.Equal(t, 0, booking.DurationHoursAt(checkIn.Add(30*time.Minute)))

	checkOut := checkIn.Add(3 * time.Hour)
	booking.CheckOutTime = &checkOut
	assert.Equal(t, 3, booking.DurationHours())
}
