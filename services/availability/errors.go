// File: services/availability/errors.go
package availability

import (
	"errors"
	"fmt"
)

var (
	// ErrSlotNotFound indicates the referenced slot does not exist for the date.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrEmptySourceSchedule rejects replication of a day with no slots.
	ErrEmptySourceSchedule = errors.New("source schedule is empty")
	// ErrSourceOverlap rejects replication of a self-overlapping source set.
	ErrSourceOverlap = errors.New("source schedule contains overlapping slots")
	// ErrInvalidMonth rejects a replication target outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidDate marks an unparseable wire date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrReplicationResultNotFound means no summary is stored for the request id.
	ErrReplicationResultNotFound = errors.New("replication result not found")

	// Editor state machine misuse.
	ErrEditInProgress      = errors.New("another edit is already in progress")
	ErrNoAddInProgress     = errors.New("no add in progress")
	ErrNoEditInProgress    = errors.New("no edit in progress")
	ErrSlotIndexOutOfRange = errors.New("slot index out of range")
)

// ValidationError carries a rejected slot's validation result across the
// service boundary so handlers can map it to a 422 with the specific
// reason instead of a 500.
type ValidationError struct {
	Result    ValidationResult
	SlotIndex int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("slot %d rejected: %s", e.SlotIndex, e.Result.Message())
}
