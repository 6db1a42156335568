// File: services/availability/classifier.go
package availability

import "medisched/models"

// Fixed policy thresholds for the per-day availability label.
const (
	// PartialThresholdMinutes is the minimum aggregate duration for PARTIAL (2h).
	PartialThresholdMinutes = 120
	// FullThresholdMinutes is the minimum aggregate duration for FULL (7h).
	FullThresholdMinutes = 420
)

// Classify derives the coarse per-day label from total slot minutes.
// Input is assumed already validated (non-overlapping), so durations sum
// without overlap correction. The label depends only on total duration,
// not on how the day is split into slots.
func Classify(slots []models.TimeSlot) models.AvailabilityStatus {
	total := 0
	for _, s := range slots {
		total += s.End - s.Start
	}
	switch {
	case total >= FullThresholdMinutes:
		return models.StatusFull
	case total >= PartialThresholdMinutes:
		return models.StatusPartial
	default:
		return models.StatusOff
	}
}
