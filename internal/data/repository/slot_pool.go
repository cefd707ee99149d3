package repository

import (
	"errors"
	"fmt"
	"time"

	"smart-parking/internal/data/entity"

	"go.uber.org/zap"
)

var ErrNoAvailableSlot = errors.New("no available slot")

type selectorMode int

const (
	selectAny selectorMode = iota
	selectByCategory
	selectBySlotNumber
)

// SlotSelector picks the allocation strategy: any free slot, a preferred
// category (with fallback to any), or one exact slot number.
type SlotSelector struct {
	mode       selectorMode
	category   entity.SlotCategory
	slotNumber int
}

func AnySlot() SlotSelector {
	return SlotSelector{mode: selectAny}
}

func ByCategory(category entity.SlotCategory) SlotSelector {
	return SlotSelector{mode: selectByCategory, category: category}
}

func BySlotNumber(slotNumber int) SlotSelector {
	return SlotSelector{mode: selectBySlotNumber, slotNumber: slotNumber}
}

// AvailabilitySnapshot is appended to the pool log on every allocate/release.
type AvailabilitySnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Available int       `json:"available"`
	Total     int       `json:"total"`
}

func (s AvailabilitySnapshot) String() string {
	return fmt.Sprintf("[%s] Available slots: %d/%d",
		s.Timestamp.Format("2006-01-02 15:04:05"), s.Available, s.Total)
}

type Metrics struct {
	TotalSlots     int
	AvailableSlots int
	OccupiedSlots  int
	OccupancyRate  float64
}

// SlotPool owns the fixed set of slots. Slots are created once at
// construction and mutated only through Allocate/Release. All query
// methods return copies, never the live slice.
type SlotPool struct {
	lotID           string
	slots           []entity.Slot
	availabilityLog []AvailabilitySnapshot
	log             *zap.Logger
}

func NewSlotPool(lotID string, totalSlots int, log *zap.Logger) *SlotPool {
	slots := make([]entity.Slot, totalSlots)
	for i := range slots {
		number := i + 1
		slots[i] = entity.Slot{
			Number:   number,
			Category: entity.CategoryForSlot(number),
		}
	}

	pool := &SlotPool{
		lotID: lotID,
		slots: slots,
		log:   log.With(zap.String("repository", "slot_pool"), zap.String("lot_id", lotID)),
	}
	pool.logAvailability()

	return pool
}

// Allocate marks a slot occupied for the given vehicle/customer and returns
// a copy of it. The selector decides which slot; ties always go to the
// lowest slot number because scans run in ascending order.
func (p *SlotPool) Allocate(selector SlotSelector, vehicleNumber, customerID string) (entity.Slot, error) {
	switch selector.mode {
	case selectBySlotNumber:
		if selector.slotNumber < 1 || selector.slotNumber > len(p.slots) {
			return entity.Slot{}, fmt.Errorf("%w: invalid slot number %d", ErrNoAvailableSlot, selector.slotNumber)
		}
		slot := &p.slots[selector.slotNumber-1]
		if slot.Occupied {
			return entity.Slot{}, fmt.Errorf("%w: slot %d is already occupied", ErrNoAvailableSlot, selector.slotNumber)
		}
		return p.occupy(slot, vehicleNumber, customerID), nil

	case selectByCategory:
		for i := range p.slots {
			slot := &p.slots[i]
			if !slot.Occupied && slot.Category == selector.category {
				return p.occupy(slot, vehicleNumber, customerID), nil
			}
		}
		// Preferred category full: fall back to any free slot.
		return p.Allocate(AnySlot(), vehicleNumber, customerID)

	default:
		for i := range p.slots {
			slot := &p.slots[i]
			if !slot.Occupied {
				return p.occupy(slot, vehicleNumber, customerID), nil
			}
		}
		return entity.Slot{}, fmt.Errorf("%w: parking lot %s is full", ErrNoAvailableSlot, p.lotID)
	}
}

func (p *SlotPool) occupy(slot *entity.Slot, vehicleNumber, customerID string) entity.Slot {
	slot.Occupied = true
	slot.VehicleNumber = vehicleNumber
	slot.OccupiedBy = customerID
	p.logAvailability()

	p.log.Info("Slot allocated",
		zap.Int("slot", slot.Number),
		zap.String("category", string(slot.Category)),
		zap.String("vehicle", vehicleNumber),
		zap.String("customer_id", customerID),
	)

	return *slot
}

// Release frees a slot. An out-of-range slot number is silently ignored and
// releasing an already-free slot is a no-op, so Release is always safe to
// call twice. The reason is advisory and only logged.
func (p *SlotPool) Release(slotNumber int, reason string) {
	if slotNumber < 1 || slotNumber > len(p.slots) {
		p.log.Debug("Release ignored for out-of-range slot", zap.Int("slot", slotNumber))
		return
	}

	slot := &p.slots[slotNumber-1]
	slot.Occupied = false
	slot.VehicleNumber = ""
	slot.OccupiedBy = ""
	p.logAvailability()

	p.log.Info("Slot released",
		zap.Int("slot", slotNumber),
		zap.String("reason", reason),
	)
}

func (p *SlotPool) Metrics() Metrics {
	total := len(p.slots)
	available := p.available()
	occupied := total - available

	rate := 0.0
	if total > 0 {
		rate = float64(occupied) / float64(total) * 100
	}

	return Metrics{
		TotalSlots:     total,
		AvailableSlots: available,
		OccupiedSlots:  occupied,
		OccupancyRate:  rate,
	}
}

// Slot returns a copy of one slot; ok is false when the number is out of range.
func (p *SlotPool) Slot(slotNumber int) (entity.Slot, bool) {
	if slotNumber < 1 || slotNumber > len(p.slots) {
		return entity.Slot{}, false
	}
	return p.slots[slotNumber-1], true
}

func (p *SlotPool) AllSlots() []entity.Slot {
	out := make([]entity.Slot, len(p.slots))
	copy(out, p.slots)
	return out
}

func (p *SlotPool) AvailableSlots() []entity.Slot {
	var out []entity.Slot
	for _, slot := range p.slots {
		if !slot.Occupied {
			out = append(out, slot)
		}
	}
	return out
}

func (p *SlotPool) SlotsByCategory(category entity.SlotCategory) []entity.Slot {
	var out []entity.Slot
	for _, slot := range p.slots {
		if slot.Category == category {
			out = append(out, slot)
		}
	}
	return out
}

func (p *SlotPool) AvailabilityLog() []AvailabilitySnapshot {
	out := make([]AvailabilitySnapshot, len(p.availabilityLog))
	copy(out, p.availabilityLog)
	return out
}

func (p *SlotPool) LotID() string {
	return p.lotID
}

func (p *SlotPool) TotalSlots() int {
	return len(p.slots)
}

func (p *SlotPool) available() int {
	available := 0
	for _, slot := range p.slots {
		if !slot.Occupied {
			available++
		}
	}
	return available
}

func (p *SlotPool) logAvailability() {
	p.availabilityLog = append(p.availabilityLog, AvailabilitySnapshot{
		Timestamp: time.Now(),
		Available: p.available(),
		Total:     len(p.slots),
	})
}
