// File: services/availability/editor.go
package availability

import "medisched/models"

// EditorMode tracks which edit, if any, is in progress.
type EditorMode int

const (
	ModeIdle EditorMode = iota
	ModeAdding
	ModeEditing
)

// Editor accumulates changes to one date's slot set in memory. Every add
// or in-place edit is gated by Validate; nothing is persisted until the
// caller saves the whole day.
type Editor struct {
	Date  string
	Slots []models.TimeSlot

	mode      EditorMode
	editIndex int
}

// NewEditor starts editing the given date with its currently persisted slots.
func NewEditor(date string, slots []models.TimeSlot) *Editor {
	return &Editor{
		Date:      date,
		Slots:     append([]models.TimeSlot(nil), slots...),
		mode:      ModeIdle,
		editIndex: NoExclusion,
	}
}

// Mode returns the current editor mode.
func (e *Editor) Mode() EditorMode {
	return e.mode
}

// EditIndex returns the index under edit, or NoExclusion when none is.
func (e *Editor) EditIndex() int {
	if e.mode != ModeEditing {
		return NoExclusion
	}
	return e.editIndex
}

// BeginAdd opens the add-slot form. Only legal from Idle.
func (e *Editor) BeginAdd() error {
	if e.mode != ModeIdle {
		return ErrEditInProgress
	}
	e.mode = ModeAdding
	return nil
}

// BeginEdit opens an in-place edit of slot i. Only legal from Idle.
func (e *Editor) BeginEdit(i int) error {
	if e.mode != ModeIdle {
		return ErrEditInProgress
	}
	if i < 0 || i >= len(e.Slots) {
		return ErrSlotIndexOutOfRange
	}
	e.mode = ModeEditing
	e.editIndex = i
	return nil
}

// Cancel abandons the pending add or edit, discarding its input.
func (e *Editor) Cancel() {
	e.mode = ModeIdle
	e.editIndex = NoExclusion
}

// CommitAdd validates the candidate and, if accepted, appends it and
// returns to Idle. On rejection the editor stays in Adding so the user
// can correct the input; the result carries the specific reason.
func (e *Editor) CommitAdd(candidate models.TimeSlot) (ValidationResult, error) {
	if e.mode != ModeAdding {
		return ValidationResult{}, ErrNoAddInProgress
	}
	res := Validate(candidate, e.Slots, NoExclusion)
	if !res.Ok() {
		return res, nil
	}
	candidate.Date = e.Date
	e.Slots = append(e.Slots, candidate)
	e.mode = ModeIdle
	return res, nil
}

// CommitEdit validates the candidate against every slot except the one
// under edit and, if accepted, replaces it and returns to Idle.
func (e *Editor) CommitEdit(candidate models.TimeSlot) (ValidationResult, error) {
	if e.mode != ModeEditing {
		return ValidationResult{}, ErrNoEditInProgress
	}
	res := Validate(candidate, e.Slots, e.editIndex)
	if !res.Ok() {
		return res, nil
	}
	candidate.Date = e.Date
	candidate.ID = e.Slots[e.editIndex].ID
	e.Slots[e.editIndex] = candidate
	e.mode = ModeIdle
	e.editIndex = NoExclusion
	return res, nil
}

// Remove deletes slot i unconditionally; shrinking the set never needs
// validation. If that slot is mid-edit the edit is cancelled first; an
// edit of a later slot keeps tracking it across the shift.
func (e *Editor) Remove(i int) error {
	if i < 0 || i >= len(e.Slots) {
		return ErrSlotIndexOutOfRange
	}
	if e.mode == ModeEditing {
		switch {
		case e.editIndex == i:
			e.Cancel()
		case e.editIndex > i:
			e.editIndex--
		}
	}
	e.Slots = append(e.Slots[:i], e.Slots[i+1:]...)
	return nil
}
