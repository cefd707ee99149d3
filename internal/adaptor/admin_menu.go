package adaptor

import (
	"go.uber.org/zap"

	"smart-parking/internal/data/entity"
)

func (c *Console) adminDashboard() bool {
	c.printf("\n===== ADMIN DASHBOARD =====\n")
	c.printf("Welcome, %s\n", c.current.FullName)
	c.printf("1. View Parking Lot Status\n")
	c.printf("2. View Slots by Category\n")
	c.printf("3. Generate Reports\n")
	c.printf("4. View Availability Log\n")
	c.printf("5. View All Users\n")
	c.printf("6. Logout\n")

	choice, ok := c.prompt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case "1":
		c.showLotStatus()
	case "2":
		c.showSlotsByCategory()
	case "3":
		c.showReports()
	case "4":
		c.showAvailabilityLog()
	case "5":
		c.showUsers()
	case "6":
		c.logout()
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
	return true
}

func (c *Console) showLotStatus() {
	metrics := c.service.Parking.Metrics()
	c.printf("\n--- Parking Lot Status ---\n")
	c.printf("Total Slots: %d\n", metrics.TotalSlots)
	c.printf("Available: %d | Occupied: %d\n", metrics.AvailableSlots, metrics.OccupiedSlots)
	c.printf("Occupancy Rate: %.2f%%\n", metrics.OccupancyRate)
	for _, slot := range c.service.Parking.AllSlots() {
		c.printf("%s\n", slot.String())
	}
}

func (c *Console) showSlotsByCategory() {
	for _, category := range []entity.SlotCategory{entity.SlotStandard, entity.SlotCompact, entity.SlotHandicap} {
		slots := c.service.Parking.SlotsByCategory(category)
		c.printf("\n--- %s Slots (%d) ---\n", category, len(slots))
		for _, slot := range slots {
			c.printf("%s\n", slot.String())
		}
	}
}

func (c *Console) showReports() {
	c.printf("\n%s\n", c.service.Report.StatusReport())
	c.printf("\n%s\n", c.service.Report.SummaryReport())
	c.log.Info("Reports generated", zap.String("admin_id", c.current.ID))
}

func (c *Console) showAvailabilityLog() {
	snapshots := c.service.Parking.AvailabilityLog()
	c.printf("\n--- Availability Log (%d entries) ---\n", len(snapshots))
	for _, snapshot := range snapshots {
		c.printf("%s\n", snapshot.String())
	}
}

func (c *Console) showUsers() {
	users := c.service.Auth.Users()
	c.printf("\n--- Registered Users (%d) ---\n", len(users))
	for _, user := range users {
		c.printf("%s\n", user.String())
	}
}
