package entity

import "fmt"

type SlotCategory string

const (
	SlotStandard SlotCategory = "Standard"
	SlotCompact  SlotCategory = "Compact"
	SlotHandicap SlotCategory = "Handicap"
)

// CategoryForSlot returns the fixed category pattern of the lot:
// every 10th slot is Handicap, every remaining 5th is Compact.
func CategoryForSlot(slotNumber int) SlotCategory {
	switch {
	case slotNumber%10 == 0:
		return SlotHandicap
	case slotNumber%5 == 0:
		return SlotCompact
	default:
		return SlotStandard
	}
}

type Slot struct {
	Number        int          `json:"number"`
	Category      SlotCategory `json:"category"`
	Occupied      bool         `json:"occupied"`
	VehicleNumber string       `json:"vehicle_number"`
	OccupiedBy    string       `json:"occupied_by"` // customer ID
}

func (s Slot) String() string {
	if s.Occupied {
		return fmt.Sprintf("Slot %d (%s) - OCCUPIED | Vehicle: %s", s.Number, s.Category, s.VehicleNumber)
	}
	return fmt.Sprintf("Slot %d (%s) - AVAILABLE", s.Number, s.Category)
}
