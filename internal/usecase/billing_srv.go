package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-parking/internal/data/entity"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

// BillingService is the fare calculator plus settlement. Fare is a pure
// function of hours and rate; the minimum-one-hour floor is the checkout
// orchestration's job, not the calculator's.
type BillingService interface {
	Fare(hours int) float64
	FareWithMultiplier(hours int, multiplier float64) float64
	FareWithCustomRate(hours int, customRate float64, useCustomRate bool) float64
	NewPayment(bookingID string, hours int) *entity.Payment
	Settle(payment *entity.Payment, tendered float64) bool
	Receipt(payment entity.Payment) string
	HourlyRate() float64
}

type billingService struct {
	rate float64
	log  *zap.Logger
}

func NewBillingService(hourlyRate float64, log *zap.Logger) BillingService {
	return &billingService{
		rate: hourlyRate,
		log:  log.With(zap.String("service", "billing")),
	}
}

func (s *billingService) Fare(hours int) float64 {
	return float64(hours) * s.rate
}

func (s *billingService) FareWithMultiplier(hours int, multiplier float64) float64 {
	return s.Fare(hours) * multiplier
}

func (s *billingService) FareWithCustomRate(hours int, customRate float64, useCustomRate bool) float64 {
	if useCustomRate {
		return float64(hours) * customRate
	}
	return s.Fare(hours)
}

func (s *billingService) NewPayment(bookingID string, hours int) *entity.Payment {
	return &entity.Payment{
		ID:          utils.GeneratePaymentID(),
		BookingID:   bookingID,
		ParkedHours: hours,
		Amount:      s.Fare(hours),
		Status:      entity.PaymentStatusPending,
	}
}

// Settle completes the payment iff the tendered amount covers it. A short
// tender changes nothing; a completed payment is never settled again.
func (s *billingService) Settle(payment *entity.Payment, tendered float64) bool {
	if payment.Status == entity.PaymentStatusCompleted {
		return false
	}
	if tendered < payment.Amount {
		s.log.Warn("Settlement rejected, insufficient tender",
			zap.String("payment_id", payment.ID),
			zap.Float64("tendered", tendered),
			zap.Float64("amount", payment.Amount),
		)
		return false
	}

	now := time.Now()
	payment.Status = entity.PaymentStatusCompleted
	payment.PaidAt = &now

	s.log.Info("Payment settled",
		zap.String("payment_id", payment.ID),
		zap.String("booking_id", payment.BookingID),
		zap.Float64("amount", payment.Amount),
	)
	return true
}

func (s *billingService) Receipt(payment entity.Payment) string {
	var b strings.Builder
	b.WriteString("=== PARKING RECEIPT ===\n")
	fmt.Fprintf(&b, "Payment ID: %s\n", payment.ID)
	fmt.Fprintf(&b, "Booking ID: %s\n", payment.BookingID)
	fmt.Fprintf(&b, "Parking Hours: %d\n", payment.ParkedHours)
	fmt.Fprintf(&b, "Hourly Rate: Rs. %.2f\n", s.rate)
	fmt.Fprintf(&b, "Total Amount: Rs. %.2f\n", payment.Amount)
	fmt.Fprintf(&b, "Status: %s\n", payment.Status)
	if payment.PaidAt != nil {
		fmt.Fprintf(&b, "Payment Time: %s\n", payment.PaidAt.Format("2006-01-02 15:04:05"))
	}
	b.WriteString("=== END RECEIPT ===")
	return b.String()
}

func (s *billingService) HourlyRate() float64 {
	return s.rate
}
