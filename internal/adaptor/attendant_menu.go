package adaptor

import (
	"errors"
	"strconv"

	"smart-parking/internal/dto/request"
	"smart-parking/internal/usecase"
)

func (c *Console) attendantDashboard() bool {
	c.printf("\n===== ATTENDANT DASHBOARD =====\n")
	c.printf("Welcome, %s\n", c.current.FullName)
	c.printf("1. Check-In Vehicle\n")
	c.printf("2. Check-Out Vehicle\n")
	c.printf("3. View Slot Status\n")
	c.printf("4. Logout\n")

	choice, ok := c.prompt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case "1":
		c.attendantCheckIn()
	case "2":
		c.attendantCheckOut()
	case "3":
		c.showLotStatus()
	case "4":
		c.logout()
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
	return true
}

func (c *Console) attendantCheckIn() {
	customerID, ok := c.prompt("Enter customer ID: ")
	if !ok {
		return
	}
	vehicleNumber, ok := c.prompt("Enter vehicle number: ")
	if !ok {
		return
	}
	slotInput, ok := c.prompt("Enter slot number (leave empty for automatic): ")
	if !ok {
		return
	}

	req := &request.CheckInRequest{
		CustomerID:    customerID,
		VehicleNumber: vehicleNumber,
	}
	if slotInput != "" {
		slotNumber, err := strconv.Atoi(slotInput)
		if err != nil {
			c.printf("Invalid slot number: %s\n", slotInput)
			return
		}
		req.SlotNumber = slotNumber
	}

	booking, err := c.service.Parking.CheckIn(req)
	if err != nil {
		c.printf("Check-in failed: %v\n", err)
		return
	}

	c.printf("Vehicle checked in successfully!\n")
	c.printf("%s\n", booking.Detail())
}

func (c *Console) attendantCheckOut() {
	bookingID, ok := c.prompt("Enter booking ID: ")
	if !ok {
		return
	}
	amountInput, ok := c.prompt("Enter tendered amount: ")
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
			c.printf("Payment failed: tendered %.2f is below the fare %.2f.\n", tendered, payment.Amount)
			c.printf("The slot stays occupied; retry check-out with the full amount.\n")
			return
		}
		c.printf("Check-out failed: %v\n", err)
		return
	}

	c.printf("Vehicle checked out successfully!\n")
	c.printf("%s\n", c.service.Billing.Receipt(payment))
}
