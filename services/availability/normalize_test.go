package availability

import (
	"testing"

	"medisched/models"
)

func TestSlotFromWire(t *testing.T) {
	s, err := slotFromWire(models.WireSlot{ID: "abc", StartTime: "09:00:00", EndTime: "12:30:00"}, "2025-03-10")
	if err != nil {
		t.Fatalf("slotFromWire: %v", err)
	}
	if s.Start != 540 || s.End != 750 || s.Date != "2025-03-10" || s.ID != "abc" {
		t.Fatalf("unexpected slot %+v", s)
	}

	if _, err := slotFromWire(models.WireSlot{StartTime: "25:00:00", EndTime: "12:00:00"}, "2025-03-10"); err == nil {
		t.Fatalf("expected error for out-of-range hour")
	}
}

func TestSlotsToWire_SortedByStart(t *testing.T) {
	wire := slotsToWire([]models.TimeSlot{
		{ID: "b", Start: 780, End: 1020},
		{ID: "a", Start: 540, End: 720},
	})
	if len(wire) != 2 {
		t.Fatalf("expected 2 wire slots, got %d", len(wire))
	}
	if wire[0].ID != "a" || wire[0].StartTime != "09:00:00" || wire[0].EndTime != "12:00:00" {
		t.Fatalf("unexpected first wire slot %+v", wire[0])
	}
	if wire[1].StartTime != "13:00:00" {
		t.Fatalf("unexpected second wire slot %+v", wire[1])
	}
}
