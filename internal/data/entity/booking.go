package entity

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	SlotNumber    int           `json:"slot_number"`
	VehicleNumber string        `json:"vehicle_number"`
	CheckInTime   time.Time     `json:"check_in_time"`
	CheckOutTime  *time.Time    `json:"check_out_time,omitempty"`
	Status        BookingStatus `json:"status"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// DurationHours is the whole hours between check-in and check-out.
// An open booking (no check-out yet) has duration 0.
func (b Booking) DurationHours() int {
	if b.CheckOutTime == nil {
		return 0
	}
	return b.DurationHoursAt(*b.CheckOutTime)
}

// DurationHoursAt computes whole hours parked as of the given time.
func (b Booking) DurationHoursAt(asOf time.Time) int {
	return int(asOf.Sub(b.CheckInTime).Hours())
}

func (b Booking) Summary() string {
	return fmt.Sprintf("Booking ID: %s | Customer: %s | Slot: %d | Vehicle: %s | Status: %s",
		b.ID, b.CustomerID, b.SlotNumber, b.VehicleNumber, b.Status)
}

func (b Booking) Detail() string {
	checkOut := "-"
	if b.CheckOutTime != nil {
		checkOut = b.CheckOutTime.Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("Booking ID: %s\n  Customer: %s\n  Slot: %d\n  Vehicle: %s\n  Check-in: %s\n  Check-out: %s\n  Duration: %d hours\n  Status: %s",
		b.ID, b.CustomerID, b.SlotNumber, b.VehicleNumber,
		b.CheckInTime.Format("2006-01-02 15:04"), checkOut, b.DurationHours(), b.Status)
}
