package availability

import (
	"context"
	"errors"
	"testing"

	"medisched/models"
)

// memoryStore fakes the per-date persistence the replicator drives.
type memoryStore struct {
	days     map[string][]models.TimeSlot
	failDate string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{days: make(map[string][]models.TimeSlot)}
}

func (m *memoryStore) fetch(_ context.Context, date string) ([]models.TimeSlot, error) {
	return m.days[date], nil
}

func (m *memoryStore) persist(_ context.Context, date string, slots []models.TimeSlot) error {
	if date == m.failDate {
		return errors.New("persist failed")
	}
	m.days[date] = slots
	return nil
}

func TestApplyToWeekdays_SkipsConflictingDate(t *testing.T) {
	store := newMemoryStore()
	// 2025-03-12 already has 09:30-10:30 persisted, which overlaps the
	// 09:00-10:00 source slot.
	store.days["2025-03-12"] = []models.TimeSlot{{ID: "existing", Date: "2025-03-12", Start: 570, End: 630}}

	source := []models.TimeSlot{{ID: "src", Date: "2025-03-10", Start: 540, End: 600}}
	summary, err := ApplyToWeekdays(context.Background(), source, 3, 2025, store.fetch, store.persist)
	if err != nil {
		t.Fatalf("ApplyToWeekdays: %v", err)
	}

	weekdays := len(WeekdayDates(3, 2025))
	if summary.Applied+summary.Skipped != weekdays {
		t.Fatalf("applied+skipped = %d, want %d weekdays", summary.Applied+summary.Skipped, weekdays)
	}
	if summary.Skipped != 1 {
		t.Fatalf("expected 1 skipped date, got %d", summary.Skipped)
	}
	if summary.Applied != weekdays-1 {
		t.Fatalf("expected %d applied, got %d", weekdays-1, summary.Applied)
	}

	// The conflicting date kept its original slots.
	if len(store.days["2025-03-12"]) != 1 || store.days["2025-03-12"][0].ID != "existing" {
		t.Fatalf("conflicting date must not be touched")
	}
	// Applied dates got copies with fresh identity and their own date.
	applied := store.days["2025-03-11"]
	if len(applied) != 1 {
		t.Fatalf("expected 1 slot on 2025-03-11, got %d", len(applied))
	}
	if applied[0].ID != "" || applied[0].Date != "2025-03-11" {
		t.Fatalf("copied slot kept source identity: %+v", applied[0])
	}
}

func TestApplyToWeekdays_PersistFailureCountsAsSkipped(t *testing.T) {
	store := newMemoryStore()
	store.failDate = "2025-03-14"

	source := []models.TimeSlot{{Start: 540, End: 600}}
	summary, err := ApplyToWeekdays(context.Background(), source, 3, 2025, store.fetch, store.persist)
	if err != nil {
		t.Fatalf("ApplyToWeekdays: %v", err)
	}
	if summary.Skipped != 1 {
		t.Fatalf("expected the failed date to count as skipped, got %d", summary.Skipped)
	}
	if _, ok := store.days["2025-03-14"]; ok {
		t.Fatalf("failed persist must leave the date empty")
	}
}

func TestApplyToWeekdays_RejectsBadSource(t *testing.T) {
	store := newMemoryStore()

	if _, err := ApplyToWeekdays(context.Background(), nil, 3, 2025, store.fetch, store.persist); err != ErrEmptySourceSchedule {
		t.Fatalf("expected ErrEmptySourceSchedule, got %v", err)
	}

	overlapping := []models.TimeSlot{{Start: 540, End: 660}, {Start: 600, End: 720}}
	if _, err := ApplyToWeekdays(context.Background(), overlapping, 3, 2025, store.fetch, store.persist); err != ErrSourceOverlap {
		t.Fatalf("expected ErrSourceOverlap, got %v", err)
	}

	valid := []models.TimeSlot{{Start: 540, End: 600}}
	if _, err := ApplyToWeekdays(context.Background(), valid, 13, 2025, store.fetch, store.persist); err != ErrInvalidMonth {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestApplyToWeekdays_RerunSkipsAlreadyAppliedDates(t *testing.T) {
	store := newMemoryStore()
	source := []models.TimeSlot{{Start: 540, End: 600}}

	first, err := ApplyToWeekdays(context.Background(), source, 3, 2025, store.fetch, store.persist)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Skipped != 0 {
		t.Fatalf("first run over an empty month skipped %d dates", first.Skipped)
	}

	// Every date now holds the source schedule, so a second run finds the
	// source overlapping itself everywhere and skips all dates.
	second, err := ApplyToWeekdays(context.Background(), source, 3, 2025, store.fetch, store.persist)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Applied != 0 || second.Skipped != first.Applied {
		t.Fatalf("second run = %+v, want all dates skipped", second)
	}
}
