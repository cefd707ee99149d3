package adaptor

import (
	"errors"
	"strconv"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/dto/request"
	"smart-parking/internal/usecase"
)

func (c *Console) customerDashboard() bool {
	c.printf("\n===== CUSTOMER DASHBOARD =====\n")
	c.printf("Welcome, %s\n", c.current.FullName)
	c.printf("1. Book Parking Slot\n")
	c.printf("2. View My Bookings\n")
	c.printf("3. Check-Out\n")
	c.printf("4. Cancel Booking\n")
	c.printf("5. View My Invoices\n")
	c.printf("6. View Available Slots\n")
	c.printf("7. Logout\n")

	choice, ok := c.prompt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case "1":
		c.customerBookSlot()
	case "2":
		c.customerBookings()
	case "3":
		c.customerCheckOut()
	case "4":
		c.customerCancel()
	case "5":
		c.customerInvoices()
	case "6":
		c.customerAvailableSlots()
	case "7":
		c.logout()
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
	return true
}

func (c *Console) customerBookSlot() {
	c.printf("Slot categories: 1. Standard  2. Compact  3. Handicap  (leave empty for any)\n")
	categoryInput, ok := c.prompt("Preferred category: ")
	if !ok {
		return
	}

	req := &request.CheckInRequest{
		CustomerID:    c.current.ID,
		VehicleNumber: c.current.VehicleNumber,
	}
	switch categoryInput {
	case "":
	case "1":
		req.PreferredCategory = string(entity.SlotStandard)
	case "2":
		req.PreferredCategory = string(entity.SlotCompact)
	case "3":
		req.PreferredCategory = string(entity.SlotHandicap)
	default:
		c.printf("Invalid category choice.\n")
		return
	}

	booking, err := c.service.Parking.CheckIn(req)
	if err != nil {
		c.printf("Booking failed: %v\n", err)
		return
	}

	c.printf("Slot booked successfully!\n")
	c.printf("%s\n", booking.Detail())
}

func (c *Console) customerBookings() {
	bookings := c.service.Parking.BookingsByCustomer(c.current.ID)
	if len(bookings) == 0 {
		c.printf("You have no bookings yet.\n")
		return
	}
	c.printf("\n--- My Bookings (%d) ---\n", len(bookings))
	for _, booking := range bookings {
		c.printf("%s\n", booking.Summary())
	}
}

func (c *Console) customerCheckOut() {
	bookingID, ok := c.prompt("Enter booking ID: ")
	if !ok {
		return
	}
	amountInput, ok := c.prompt("Enter payment amount: ")
	if !ok {
		return
	}
	tendered, err := strconv.ParseFloat(amountInput, 64)
	if err != nil {
		c.printf("Invalid amount: %s\n", amountInput)
		return
	}

	payment, err := c.service.Parking.CheckOut(&request.CheckOutRequest{
		BookingID:      bookingID,
		TenderedAmount: tendered,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrSettlementPending) {
			c.printf("Payment of %.2f is not enough, the fare is %.2f.\n", tendered, payment.Amount)
			c.printf("Your booking is awaiting settlement; check out again with the full amount.\n")
			return
		}
		c.printf("Check-out failed: %v\n", err)
		return
	}

	c.printf("Checked out successfully!\n")
	c.printf("%s\n", c.service.Billing.Receipt(payment))
}

func (c *Console) customerCancel() {
	bookingID, ok := c.prompt("Enter booking ID to cancel: ")
	if !ok {
		return
	}

	if err := c.service.Parking.Cancel(bookingID); err != nil {
		c.printf("Cancellation failed: %v\n", err)
		return
	}
	c.printf("Booking %s cancelled.\n", bookingID)
}

func (c *Console) customerInvoices() {
	payments := c.service.Parking.PaymentsByCustomer(c.current.ID)
	if len(payments) == 0 {
		c.printf("You have no invoices yet.\n")
		return
	}
	c.printf("\n--- My Invoices (%d) ---\n", len(payments))
	for _, payment := range payments {
		c.printf("%s\n", c.service.Billing.Receipt(payment))
	}
}

func (c *Console) customerAvailableSlots() {
	slots := c.service.Parking.AvailableSlots()
	c.printf("\n--- Available Slots (%d) ---\n", len(slots))
	for _, slot := range slots {
		c.printf("%s\n", slot.String())
	}
}
