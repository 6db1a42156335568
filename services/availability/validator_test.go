package availability

import (
	"testing"

	"medisched/models"
)

func slot(start, end int) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}

func TestValidate_InvalidRange(t *testing.T) {
	existing := []models.TimeSlot{slot(540, 600)}
	for _, c := range []models.TimeSlot{slot(600, 600), slot(660, 600)} {
		res := Validate(c, existing, NoExclusion)
		if res.Code != CodeInvalidRange {
			t.Fatalf("expected InvalidRange for %+v, got %v", c, res.Code)
		}
	}
}

func TestValidate_DuplicateBeatsOverlap(t *testing.T) {
	existing := []models.TimeSlot{slot(540, 600)}
	// An identical slot also overlaps, but must be reported as Duplicate.
	res := Validate(slot(540, 600), existing, NoExclusion)
	if res.Code != CodeDuplicate {
		t.Fatalf("expected Duplicate, got %v", res.Code)
	}
}

func TestValidate_OverlapReportsFirstMatch(t *testing.T) {
	existing := []models.TimeSlot{
		slot(540, 600),  // 09:00-10:00
		slot(630, 690),  // 10:30-11:30
		slot(720, 780),  // 12:00-13:00
	}
	// 10:45-12:30 collides with indexes 1 and 2; index 1 wins.
	res := Validate(slot(645, 750), existing, NoExclusion)
	if res.Code != CodeOverlaps {
		t.Fatalf("expected Overlaps, got %v", res.Code)
	}
	if res.ConflictIndex != 1 {
		t.Fatalf("expected conflict with slot 1, got %d", res.ConflictIndex)
	}
}

func TestValidate_ExcludeIndexForInPlaceEdit(t *testing.T) {
	existing := []models.TimeSlot{slot(540, 600), slot(660, 720)}
	// Re-saving slot 0 over its own time must not conflict with itself.
	res := Validate(slot(540, 630), existing, 0)
	if !res.Ok() {
		t.Fatalf("expected Ok when excluding the edited slot, got %v", res.Code)
	}
	// Without the exclusion the same candidate overlaps slot 0.
	res = Validate(slot(540, 630), existing, NoExclusion)
	if res.Code != CodeOverlaps || res.ConflictIndex != 0 {
		t.Fatalf("expected Overlaps with slot 0, got %v/%d", res.Code, res.ConflictIndex)
	}
}

func TestValidate_AdjacentSlotsAccepted(t *testing.T) {
	existing := []models.TimeSlot{slot(540, 600)}
	res := Validate(slot(600, 660), existing, NoExclusion)
	if !res.Ok() {
		t.Fatalf("expected adjacent slot to be accepted, got %v", res.Code)
	}
}

func TestValidateSet(t *testing.T) {
	ok := []models.TimeSlot{slot(540, 600), slot(600, 660), slot(720, 780)}
	if res, idx := ValidateSet(ok); !res.Ok() || idx != NoExclusion {
		t.Fatalf("expected valid set, got %v at %d", res.Code, idx)
	}

	bad := []models.TimeSlot{slot(540, 660), slot(600, 720)}
	res, idx := ValidateSet(bad)
	if res.Code != CodeOverlaps || idx != 1 {
		t.Fatalf("expected Overlaps at slot 1, got %v at %d", res.Code, idx)
	}
}
