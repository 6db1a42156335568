package models

// AvailabilityStatus is the coarse per-day label derived from total
// available minutes. It is recomputed, never stored.
type AvailabilityStatus string

const (
	StatusOff     AvailabilityStatus = "OFF"
	StatusPartial AvailabilityStatus = "PARTIAL"
	StatusFull    AvailabilityStatus = "FULL"
)

// DayScheduleDTO is the API view of one doctor's schedule for one date.
type DayScheduleDTO struct {
	Date      string             `json:"date"`
	Status    AvailabilityStatus `json:"status"`
	TimeSlots []WireSlot         `json:"timeSlots"`
}

// SaveDayScheduleRequest is the full-replacement save payload for a date.
type SaveDayScheduleRequest struct {
	Date      string     `json:"date" binding:"required"`
	TimeSlots []WireSlot `json:"timeSlots" binding:"required"`
}

// MonthStatusesDTO annotates every date of a month for the calendar view.
type MonthStatusesDTO struct {
	Month    int                           `json:"month"`
	Year     int                           `json:"year"`
	Statuses map[string]AvailabilityStatus `json:"statuses"`
}
