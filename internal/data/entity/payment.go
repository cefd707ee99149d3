package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

type Payment struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	ParkedHours int           `json:"parked_hours"`
	Amount      float64       `json:"amount"`
	Status      PaymentStatus `json:"status"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}
