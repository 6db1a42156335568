// File: services/availability/replicator.go
package availability

import (
	"context"

	"medisched/models"
)

// FetchFunc loads the persisted slots for one date.
type FetchFunc func(ctx context.Context, date string) ([]models.TimeSlot, error)

// PersistFunc replaces one date's slots wholesale.
type PersistFunc func(ctx context.Context, date string, slots []models.TimeSlot) error

// ApplyToWeekdays copies the source slot set onto every Monday-Friday
// date of the target month. A date is skipped entirely when any of its
// existing slots overlaps any source slot (there is no partial merge),
// and a failed fetch or persist for a date also counts as skipped; the
// loop carries on to the next date without retry or rollback. Dates are
// processed sequentially so the summary counts stay deterministic and
// the backend is not flooded.
//
// The operation is best-effort idempotent: re-running it only touches
// previously skipped dates. A date that already holds the source
// schedule will register as overlapping (with itself) and be counted as
// skipped on the second run.
func ApplyToWeekdays(ctx context.Context, source []models.TimeSlot, month, year int, fetch FetchFunc, persist PersistFunc) (models.ReplicationSummary, error) {
	var summary models.ReplicationSummary

	if len(source) == 0 {
		return summary, ErrEmptySourceSchedule
	}
	// The editor already guarantees non-overlap; re-check anyway before
	// fanning the set out across a month.
	if selfOverlaps(source) {
		return summary, ErrSourceOverlap
	}
	if month < 1 || month > 12 {
		return summary, ErrInvalidMonth
	}

	for _, date := range WeekdayDates(month, year) {
		existing, err := fetch(ctx, date)
		if err != nil {
			summary.Skipped++
			continue
		}
		if anyOverlap(source, existing) {
			summary.Skipped++
			continue
		}

		copies := make([]models.TimeSlot, len(source))
		for i, s := range source {
			s.ID = "" // target date gets fresh backend-assigned ids
			s.Date = date
			copies[i] = s
		}
		if err := persist(ctx, date, copies); err != nil {
			summary.Skipped++
			continue
		}
		summary.Applied++
	}

	return summary, nil
}

// anyOverlap reports whether any slot in a overlaps any slot in b.
func anyOverlap(a, b []models.TimeSlot) bool {
	for _, x := range a {
		for _, y := range b {
			if Overlaps(x.Start, x.End, y.Start, y.End) {
				return true
			}
		}
	}
	return false
}
