// File: services/availability/normalize.go
package availability

import (
	"fmt"
	"sort"

	"medisched/models"
)

// slotFromWire converts one wire slot to the canonical internal form.
// Core logic never sees wire shapes; this boundary is the only place
// that parses clock strings.
func slotFromWire(w models.WireSlot, date string) (models.TimeSlot, error) {
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("startTime: %w", err)
	}
	end, err := ParseClock(w.EndTime)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("endTime: %w", err)
	}
	return models.TimeSlot{
		ID:    w.ID,
		Date:  date,
		Start: start,
		End:   end,
	}, nil
}

// slotsFromWire converts a whole save payload.
func slotsFromWire(wire []models.WireSlot, date string) ([]models.TimeSlot, error) {
	slots := make([]models.TimeSlot, 0, len(wire))
	for i, w := range wire {
		s, err := slotFromWire(w, date)
		if err != nil {
			return nil, fmt.Errorf("timeSlots[%d]: %w", i, err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// slotsToWire renders internal slots for the API, ordered by start time.
func slotsToWire(slots []models.TimeSlot) []models.WireSlot {
	sorted := append([]models.TimeSlot(nil), slots...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	wire := make([]models.WireSlot, len(sorted))
	for i, s := range sorted {
		wire[i] = models.WireSlot{
			ID:        s.ID,
			StartTime: FormatClock(s.Start),
			EndTime:   FormatClock(s.End),
		}
	}
	return wire
}
