package repository

import (
	"fmt"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

// PaymentLedger keeps payment records in insertion order.
type PaymentLedger struct {
	payments []*entity.Payment
	byID     map[string]*entity.Payment
	log      *zap.Logger
}

func NewPaymentLedger(log *zap.Logger) *PaymentLedger {
	return &PaymentLedger{
		byID: make(map[string]*entity.Payment),
		log:  log.With(zap.String("repository", "payment_ledger")),
	}
}

func (l *PaymentLedger) Add(payment *entity.Payment) error {
	if _, exists := l.byID[payment.ID]; exists {
		return fmt.Errorf("payment %s already recorded", payment.ID)
	}
	l.payments = append(l.payments, payment)
	l.byID[payment.ID] = payment

	l.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID),
		zap.String("booking_id", payment.BookingID),
		zap.Float64("amount", payment.Amount),
		zap.String("status", string(payment.Status)),
	)
	return nil
}

func (l *PaymentLedger) FindByID(id string) (entity.Payment, bool) {
	payment, ok := l.byID[id]
	if !ok {
		return entity.Payment{}, false
	}
	return *payment, true
}

func (l *PaymentLedger) FindByBooking(bookingID string) (entity.Payment, bool) {
	for _, payment := range l.payments {
		if payment.BookingID == bookingID {
			return *payment, true
		}
	}
	return entity.Payment{}, false
}

// FindPendingByBooking returns the live PENDING record for a booking, if
// any, so a failed settlement can be retried. Caller must hold the
// controller lock.
func (l *PaymentLedger) FindPendingByBooking(bookingID string) *entity.Payment {
	for _, payment := range l.payments {
		if payment.BookingID == bookingID && payment.Status == entity.PaymentStatusPending {
			return payment
		}
	}
	return nil
}

func (l *PaymentLedger) All() []entity.Payment {
	out := make([]entity.Payment, len(l.payments))
	for i, payment := range l.payments {
		out[i] = *payment
	}
	return out
}

func (l *PaymentLedger) Count() int {
	return len(l.payments)
}

// Restore re-seeds the ledger from a persisted snapshot.
func (l *PaymentLedger) Restore(payments []entity.Payment) error {
	for _, payment := range payments {
		if _, exists := l.byID[payment.ID]; exists {
			return fmt.Errorf("payment %s already recorded", payment.ID)
		}
		p := payment
		l.payments = append(l.payments, &p)
		l.byID[p.ID] = &p
	}
	return nil
}
