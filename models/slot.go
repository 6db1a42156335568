package models

// TimeSlot is a doctor's availability interval on one calendar date.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); the
// interval is half-open [Start, End), so slots that exactly touch do not
// overlap.
type TimeSlot struct {
	ID       string `bson:"id" json:"id"`
	DoctorID string `bson:"doctorId" json:"-"`
	Date     string `bson:"date" json:"date"` // e.g., "2025-03-10"
	Start    int    `bson:"start" json:"start"`
	End      int    `bson:"end" json:"end"`
}

// WireSlot is the API shape of a slot: clock strings with a seconds
// component, always ":00" (e.g., "09:00:00"). The normalization boundary
// in the availability service converts wire slots to TimeSlot before any
// core logic sees them.
type WireSlot struct {
	ID        string `json:"id,omitempty"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
