package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ==================== IDS ====================

// Format: PREFIX-XXXXX (5 uppercase chars of a fresh UUID)
func generateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:5]))
}

func GenerateBookingID() string {
	return generateID("BOOK")
}

func GeneratePaymentID() string {
	return generateID("PAY")
}

func GenerateCustomerID() string {
	return generateID("CUST")
}
