// File: services/availability/validator.go
package availability

import (
	"fmt"

	"medisched/models"
)

// ValidationCode classifies the outcome of validating a candidate slot.
type ValidationCode int

const (
	CodeOk ValidationCode = iota
	CodeInvalidRange
	CodeDuplicate
	CodeOverlaps
)

// NoExclusion is passed as excludeIndex when no slot is being edited in place.
const NoExclusion = -1

// ValidationResult is the outcome of checking a candidate slot against a
// day's existing slots. ConflictIndex identifies the first existing slot
// the candidate collides with, and is only meaningful for CodeOverlaps.
type ValidationResult struct {
	Code          ValidationCode
	ConflictIndex int
}

// Ok reports whether the candidate was accepted.
func (r ValidationResult) Ok() bool {
	return r.Code == CodeOk
}

// Message renders a user-facing reason for a rejected candidate.
func (r ValidationResult) Message() string {
	switch r.Code {
	case CodeOk:
		return "ok"
	case CodeInvalidRange:
		return "end time must be after start time"
	case CodeDuplicate:
		return "an identical slot already exists"
	case CodeOverlaps:
		return fmt.Sprintf("slot overlaps existing slot %d", r.ConflictIndex)
	default:
		return "unknown validation result"
	}
}

// Validate decides whether a candidate slot may join a day's slot set.
// Checks run in order and the first failure wins: an invalid range is
// reported before anything else, and an exact duplicate is reported as
// Duplicate rather than Overlaps even though it also overlaps.
// excludeIndex skips one existing slot, used when editing it in place;
// pass NoExclusion otherwise. Pure function, no side effects.
func Validate(candidate models.TimeSlot, existing []models.TimeSlot, excludeIndex int) ValidationResult {
	if !IsValidRange(candidate.Start, candidate.End) {
		return ValidationResult{Code: CodeInvalidRange, ConflictIndex: NoExclusion}
	}

	for i, s := range existing {
		if i == excludeIndex {
			continue
		}
		if s.Start == candidate.Start && s.End == candidate.End {
			return ValidationResult{Code: CodeDuplicate, ConflictIndex: NoExclusion}
		}
	}

	for i, s := range existing {
		if i == excludeIndex {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, s.Start, s.End) {
			return ValidationResult{Code: CodeOverlaps, ConflictIndex: i}
		}
	}

	return ValidationResult{Code: CodeOk, ConflictIndex: NoExclusion}
}

// ValidateSet checks a whole slot set the way the editor would have built
// it: each slot is validated against the ones before it. On failure it
// returns the offending slot's index alongside the result.
func ValidateSet(slots []models.TimeSlot) (ValidationResult, int) {
	for i := range slots {
		if res := Validate(slots[i], slots[:i], NoExclusion); !res.Ok() {
			return res, i
		}
	}
	return ValidationResult{Code: CodeOk, ConflictIndex: NoExclusion}, NoExclusion
}

// selfOverlaps reports whether any two slots in the set overlap.
func selfOverlaps(slots []models.TimeSlot) bool {
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if Overlaps(slots[i].Start, slots[i].End, slots[j].Start, slots[j].End) {
				return true
			}
		}
	}
	return false
}
