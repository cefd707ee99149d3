package request

type CheckInRequest struct {
	CustomerID    string `json:"customer_id" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	// Optional preferences; SlotNumber wins when both are set.
	PreferredCategory string `json:"preferred_category,omitempty" validate:"omitempty,oneof=Standard Compact Handicap"`
	SlotNumber        int    `json:"slot_number,omitempty" validate:"omitempty,min=1"`
}

type CheckOutRequest struct {
	BookingID      string  `json:"booking_id" validate:"required"`
	TenderedAmount float64 `json:"tendered_amount" validate:"gte=0"`
}
